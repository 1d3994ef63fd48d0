package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleArgs struct {
	Task   string `json:"task" description:"Description of the task"`
	Index  *int   `json:"index" description:"Optional index"`
	Status string `json:"status,omitempty" enum:"pending,in_progress,done"`
}

func TestCreateSchema(t *testing.T) {
	schema := CreateSchema(sampleArgs{})

	props, ok := schema["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, props, "task")
	assert.Contains(t, props, "index")
	assert.Contains(t, props, "status")

	status := props["status"].(map[string]any)
	assert.ElementsMatch(t, []any{"pending", "in_progress", "done"}, status["enum"])

	// Pointer and omitempty fields are optional.
	assert.ElementsMatch(t, []string{"task"}, schema["required"])
}

func TestValidateParameters(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"index": map[string]any{"type": "integer"},
			"task":  map[string]any{"type": "string"},
		},
		"required": []any{"task"},
	}

	assert.NoError(t, ValidateParameters(map[string]any{"task": "x", "index": float64(3)}, schema))

	err := ValidateParameters(map[string]any{}, schema)
	assert.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "task", vErr.Field)

	// Fractional value for an integer field fails.
	err = ValidateParameters(map[string]any{"task": "x", "index": 1.5}, schema)
	assert.Error(t, err)

	// Extra fields are tolerated.
	assert.NoError(t, ValidateParameters(map[string]any{"task": "x", "extra": true}, schema))
}
