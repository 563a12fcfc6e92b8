package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/tsscaffold/pkg/cobrax/topics"
	"github.com/arthur-debert/tsscaffold/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var helpTopics embed.FS

// topicRenderer renders markdown topics with glamour on a color terminal
type topicRenderer struct{}

func (topicRenderer) Render(content string, format string) string {
	if format != ".md" || output.DetectNoColor(os.Stdout) {
		return content
	}
	return output.NewMarkdownRenderer().Render(content)
}

func installHelpTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(helpTopics, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m, err := topics.Load(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topicRenderer{},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(rootCmd)
}
