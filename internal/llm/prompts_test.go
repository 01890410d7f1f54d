package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		vars map[string]string
		want string
	}{
		{
			name: "all placeholders substituted",
			tmpl: "Review {file_path} of type {file_type}",
			vars: map[string]string{"file_path": "main.go", "file_type": "go"},
			want: "Review main.go of type go",
		},
		{
			name: "repeated placeholder",
			tmpl: "{x} and {x}",
			vars: map[string]string{"x": "once"},
			want: "once and once",
		},
		{
			name: "unknown placeholder stays verbatim",
			tmpl: "Review {file_path} with {unknown_var}",
			vars: map[string]string{"file_path": "main.go"},
			want: "Review main.go with {unknown_var}",
		},
		{
			name: "no placeholders",
			tmpl: "plain text",
			vars: map[string]string{"file_path": "main.go"},
			want: "plain text",
		},
		{
			name: "nil vars",
			tmpl: "Review {file_path}",
			vars: nil,
			want: "Review {file_path}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTemplate(tt.tmpl, tt.vars))
		})
	}
}

func TestTemplateOr(t *testing.T) {
	assert.Equal(t, "custom", templateOr("custom", "fallback"))
	assert.Equal(t, "fallback", templateOr("", "fallback"))
	assert.Equal(t, "fallback", templateOr("   \n", "fallback"))
}
