package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"branch", "main", false},
		{"nested branch", "feature/login", false},
		{"tag", "v1.0", false},
		{"peeled", "HEAD^{tree}", false},
		{"ancestry", "HEAD~3", false},
		{"dash inside", "fix-bug", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"short option", "-n", true},
		{"long option", "--all", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Ref(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Ref(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestRefField(t *testing.T) {
	assert.NoError(t, RefField("start", "main"))

	err := RefField("start", "--output=x")
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "start", fieldErrs[0].Field)
}

func TestRefField_Combined(t *testing.T) {
	err := criterio.ValidateStruct(
		RefField("start", ""),
		RefField("end", "-p"),
	)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.NotEmpty(t, fieldErrs)
	assert.Contains(t, err.Error(), "ref is required")
}
