// Package prompt asks for a day or a picture on a line-oriented terminal.
package prompt

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/cosmic/pkg/apod"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

// Date asks for a YYYY-MM-DD day until check accepts the answer. An empty
// answer means the latest picture and returns "".
func Date(in io.Reader, out io.Writer, check func(string) error) (string, error) {
	validate := func(input string) error {
		input = strings.TrimSpace(input)
		if input == "" {
			return nil
		}
		return check(input)
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	p := promptui.Prompt{
		Label:     "Day (" + apod.DateLayout + ", empty for the latest)",
		Templates: templates,
		Validate:  validate,
		Stdin:     io.NopCloser(in),
		Stdout:    NopCloser(out),
	}

	result, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// Picture lets the user choose one of pics and returns its index.
func Picture(in io.Reader, out io.Writer, pics []apod.Picture) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Date | cyan }} {{ .Title | bold }}",
		Inactive: "   {{ .Date | cyan }} {{ .Title }}",
		Selected: "➜  {{ .Date }} {{ .Title | bold }}",
		Details: `
--------- Details ----------
{{ with .Copyright }}© {{ . }}
{{ end }}{{ .URL }}
`,
	}

	searcher := func(input string, index int) bool {
		p := pics[index]
		name := strings.ReplaceAll(strings.ToLower(p.Title+p.Date), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	s := promptui.Select{
		HideHelp:  true,
		Label:     "Pictures",
		Items:     pics,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(in),
		Stdout:    NopCloser(out),
	}

	i, _, err := s.Run()
	return i, err
}
