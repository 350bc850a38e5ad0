package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"max=10"`
	Month   string `json:"month,omitempty" validate:"omitempty,month"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     reviewRequest
		details map[string]interface{}
	}{
		{
			name: "valid",
			req:  reviewRequest{Rating: 5, Comment: "epic", Month: "July"},
		},
		{
			name:    "rating too high",
			req:     reviewRequest{Rating: 6},
			details: map[string]interface{}{"rating": "max=5"},
		},
		{
			name:    "comment too long and bad month",
			req:     reviewRequest{Rating: 3, Comment: "way too long comment", Month: "july"},
			details: map[string]interface{}{"comment": "max=10", "month": "month"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.details == nil {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Equal(t, tt.details, Details(errs))
		})
	}
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("December", "month"))
	assert.Error(t, Var("Dec", "month"))
	assert.Error(t, Var("not-a-uuid", "uuid"))
}
