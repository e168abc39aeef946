package server

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// bindOneOrMany reads a JSON body that may be either a single object or an
// array of objects and always returns a slice.
func bindOneOrMany[T any](c *gin.Context) ([]T, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, io.EOF
	}

	if body[0] == '[' {
		var rows []T
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}

	var row T
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, err
	}
	return []T{row}, nil
}
