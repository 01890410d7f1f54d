package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferSeverity(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    int
	}{
		{
			name:    "security keyword",
			comment: "This opens a SQL injection vector through the unescaped query.",
			want:    5,
		},
		{
			name:    "vulnerability stem matches plural forms",
			comment: "Known vulnerabilities in this dependency version.",
			want:    5,
		},
		{
			name:    "crash keyword",
			comment: "Dereferencing a nil pointer here will crash the worker.",
			want:    4,
		},
		{
			name:    "race condition",
			comment: "Concurrent map write, classic race condition.",
			want:    4,
		},
		{
			name:    "performance keyword",
			comment: "This loop causes an N+1 query pattern against the database.",
			want:    3,
		},
		{
			name:    "style keyword",
			comment: "Consider a refactor, the nesting hurts readability.",
			want:    2,
		},
		{
			name:    "no keyword at all",
			comment: "Minor nitpick about the error message wording.",
			want:    1,
		},
		{
			name:    "highest tier wins over lower",
			comment: "Besides the performance hit, this is also a security hole.",
			want:    5,
		},
		{
			name:    "crash outranks performance",
			comment: "Slow query aside, the unchecked index will crash at runtime.",
			want:    4,
		},
		{
			name:    "case insensitive",
			comment: "SECURITY: anyone can bypass this check.",
			want:    5,
		},
		{
			name:    "empty comment",
			comment: "",
			want:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferSeverity(tt.comment))
		})
	}
}

func TestInferSeverityIsDeterministic(t *testing.T) {
	comment := "A deadlock between the pool and the cache mutex."
	first := InferSeverity(comment)
	for range 10 {
		assert.Equal(t, first, InferSeverity(comment))
	}
}
