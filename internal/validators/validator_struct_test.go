package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-item-reviews/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValidator_Validate(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		obj       any
		wantErr   error
		wantInMsg []string
	}{
		{
			name: "valid register request",
			obj:  models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"},
		},
		{
			name:      "register request missing fields",
			obj:       models.RegisterRequest{},
			wantErr:   ErrInvalidModel,
			wantInMsg: []string{"username: required", "email: required", "password: required"},
		},
		{
			name:      "username too long",
			obj:       models.RegisterRequest{Username: strings.Repeat("u", 51), Email: "a@b.co", Password: "pw"},
			wantErr:   ErrInvalidModel,
			wantInMsg: []string{"username: max=50"},
		},
		{
			name:      "malformed email",
			obj:       &models.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "pw"},
			wantErr:   ErrInvalidModel,
			wantInMsg: []string{"email: email"},
		},
		{
			name:      "password over bcrypt limit",
			obj:       models.RegisterRequest{Username: "alice", Email: "a@b.co", Password: strings.Repeat("p", 73)},
			wantErr:   ErrInvalidModel,
			wantInMsg: []string{"password: max=72"},
		},
		{
			name: "valid review",
			obj:  models.ReviewRequest{Score: 5, Text: "great"},
		},
		{
			name:      "score below range",
			obj:       models.ReviewRequest{Score: 0, Text: "meh"},
			wantErr:   ErrInvalidModel,
			wantInMsg: []string{"score: min=1"},
		},
		{
			name:      "score above range",
			obj:       models.ReviewRequest{Score: 6, Text: "wow"},
			wantErr:   ErrInvalidModel,
			wantInMsg: []string{"score: max=5"},
		},
		{
			name:      "comment update without owner",
			obj:       models.CommentUpdate{CommentID: uuid.New(), Text: "x"},
			wantErr:   ErrInvalidModel,
			wantInMsg: []string{"UserID: required"},
		},
		{
			name:    "not a struct",
			obj:     42,
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "nil",
			obj:     nil,
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			for _, part := range tt.wantInMsg {
				assert.Contains(t, err.Error(), part)
			}
		})
	}
}

func TestStructValidator_Validate_Partial(t *testing.T) {
	v := NewStructValidator()

	// only Score is checked, the missing text is ignored
	err := v.Validate(context.Background(), models.ReviewRequest{Score: 3}, "Score")
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.ReviewRequest{Score: 9}, "Score")
	assert.ErrorIs(t, err, ErrInvalidModel)
}
