package llm

import (
	"encoding/json"
	"testing"
)

func TestStripMarkdownFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tc := range cases {
		if got := StripMarkdownFences(tc.in); got != tc.want {
			t.Errorf("StripMarkdownFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRepairTruncatedJSON(t *testing.T) {
	if got := RepairTruncatedJSON(`{"a": {"b": 1}`); got != `{"a": {"b": 1}}` {
		t.Errorf("unexpected repair result: %q", got)
	}
	if got := RepairTruncatedJSON(`{"a": 1}`); got != `{"a": 1}` {
		t.Errorf("balanced JSON should pass through, got %q", got)
	}
}

func TestCleanResponseRoundTrip(t *testing.T) {
	raw := "```json\n{\"report\": \"ok\", \"nested\": {\"x\": 1}\n```"

	var decoded map[string]any
	if err := json.Unmarshal([]byte(CleanResponse(raw)), &decoded); err != nil {
		t.Fatalf("cleaned response should decode: %v", err)
	}
	if decoded["report"] != "ok" {
		t.Errorf("unexpected decode: %v", decoded)
	}
}
