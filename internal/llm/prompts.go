package llm

import "strings"

// Agents bring their own prompt templates; these defaults cover agents whose
// templates were left empty.
const defaultGenerationPrompt = `You are a strict but constructive code reviewer.

Review the following change in {file_path} (file type: {file_type}):

{code_chunk}

If you find a concrete problem, describe it in one short paragraph and suggest
a fix. If the change is fine, respond with an empty message. Do not invent
problems.`

const defaultEvaluationPrompt = `You are grading the quality of a code review comment.

The code:

{code_chunk}

The review comment for {file_path}:

{review_comment}

Score the comment from 1 to 10 on each of these dimensions: {dimensions}.
Respond with a single JSON object of the form
{"scores": {"<dimension>": <score>}, "summary": "<one sentence>"}.`

const replySystemPrompt = `You are %s, a code review assistant. You previously
left the review comment in this thread. Answer the developer's reply helpfully
and concisely, staying on the topic of the code under discussion.`

// RenderTemplate substitutes every {key} occurrence in tmpl with the matching
// variable. Placeholders with no matching variable are left verbatim, so a
// typo in a template degrades the prompt instead of failing the call.
func RenderTemplate(tmpl string, vars map[string]string) string {
	out := tmpl
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

func templateOr(tmpl, fallback string) string {
	if strings.TrimSpace(tmpl) == "" {
		return fallback
	}
	return tmpl
}
