package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funckode/funckode/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil error", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"contributor not found", domain.ErrContributorNotFound, http.StatusNotFound, ErrMsgContributorNotFound},
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound, ErrMsgProjectNotFound},
		{"project moderated", domain.ErrProjectModerated, http.StatusConflict, ErrMsgProjectModerated},
		{"event not found", domain.ErrEventNotFound, http.StatusNotFound, ErrMsgEventNotFound},
		{"duplicate rsvp", domain.ErrDuplicateRSVP, http.StatusConflict, ErrMsgAlreadyAttending},
		{"rsvp not found", domain.ErrRSVPNotFound, http.StatusNotFound, ErrMsgRSVPNotFound},
		{"database error", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{
			"wrapped domain error",
			fmt.Errorf("moderating: %w", domain.ErrProjectModerated),
			http.StatusConflict,
			ErrMsgProjectModerated,
		},
		{
			"doubly wrapped domain error",
			fmt.Errorf("handler: %w", fmt.Errorf("repo: %w", domain.ErrEventNotFound)),
			http.StatusNotFound,
			ErrMsgEventNotFound,
		},
		{
			"short unknown error passes through",
			errors.New("catalog file unreadable"),
			http.StatusInternalServerError,
			"catalog file unreadable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	type awardShape struct {
		BadgeType string `validate:"required,badgetype"`
		Username  string `validate:"required,max=100"`
	}

	t.Run("Missing fields reported per field", func(t *testing.T) {
		err := GetValidator().ValidateStruct(awardShape{})
		fields := FormatValidationError(err)

		assert.Equal(t, "This field is required", fields["badgetype"])
		assert.Equal(t, "This field is required", fields["username"])
	})

	t.Run("Unknown badge type reported", func(t *testing.T) {
		err := GetValidator().ValidateStruct(awardShape{BadgeType: "golden_keyboard", Username: "alice"})
		fields := FormatValidationError(err)

		assert.Equal(t, "Unknown badge type", fields["badgetype"])
	})

	t.Run("Non-validator error collapses to generic", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("Nil error yields nil map", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
