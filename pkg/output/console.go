package output

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/arthur-debert/tsscaffold/pkg/output/styles"
	"github.com/arthur-debert/tsscaffold/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const ruleWidth = 50

// NextStepData is the data next-step templates are executed with
type NextStepData struct {
	// Root is the project root as the user gave it
	Root string
	// AbsRoot is Root resolved to an absolute path
	AbsRoot string
}

// Console writes scaffold progress and results to a terminal or stream.
// It implements scaffold.Reporter.
type Console struct {
	w        io.Writer
	noColor  bool
	dryRun   bool
	renderer *lipgloss.Renderer
	markdown *MarkdownRenderer
	logger   zerolog.Logger
}

// NewConsole creates a Console writing to w
func NewConsole(w io.Writer, noColor bool) *Console {
	c := &Console{
		w:        w,
		noColor:  noColor,
		markdown: NewMarkdownRenderer(),
		logger:   logging.GetLogger("output.console"),
	}
	if !noColor {
		c.renderer = lipgloss.NewRenderer(w)
		c.logger.Debug().
			Str("colorProfile", fmt.Sprintf("%v", c.renderer.ColorProfile())).
			Msg("Lipgloss renderer created")
	}
	return c
}

// Style renders text with the named style, or returns it as is without color
func (c *Console) Style(name, text string) string {
	if c.noColor {
		return text
	}
	return c.renderer.NewStyle().Inherit(styles.GetStyle(name)).Render(text)
}

// Start prints the run banner
func (c *Console) Start(name string, dryRun bool) {
	c.dryRun = dryRun
	title := fmt.Sprintf("🚀 Creating %s project structure...", name)
	if dryRun {
		title = fmt.Sprintf("🔍 Previewing %s project structure (dry run)...", name)
	}
	c.println(c.Style("Title", title))
	c.println(c.Style("Rule", strings.Repeat("=", ruleWidth)))
}

// Item prints one line for an ensured path
func (c *Console) Item(item types.ItemResult) {
	noun := "directory"
	if item.Kind == types.ItemFile {
		noun = "file"
	}

	var line string
	switch {
	case item.Status == types.StatusExists:
		line = c.Style("Exists", fmt.Sprintf("⏭️  %s exists:", noun))
	case c.dryRun:
		line = c.Style("Preview", fmt.Sprintf("📝 would create %s:", noun))
	default:
		line = c.Style("Created", fmt.Sprintf("✅ created %s:", noun))
	}
	line += " " + c.Style("Path", item.Path)

	if item.Rule != "" {
		line += " " + c.Style("RuleName", "("+item.Rule+")")
	}
	c.println(line)
}

// Summary prints the completion block and the blueprint's next steps
func (c *Console) Summary(result *types.ScaffoldResult, name string, nextSteps []string) {
	absRoot, err := filepath.Abs(result.Root)
	if err != nil {
		absRoot = result.Root
	}

	c.println(c.Style("Rule", strings.Repeat("=", ruleWidth)))
	if result.DryRun {
		c.println(c.Style("Success", fmt.Sprintf("🔍 %s dry run finished, nothing was written", name)))
	} else {
		c.println(c.Style("Success", fmt.Sprintf("🎉 %s project structure is ready!", name)))
	}
	c.println(fmt.Sprintf("📁 Project root: %s", c.Style("Path", absRoot)))

	verb := "created"
	if result.DryRun {
		verb = "to create"
	}
	c.println(fmt.Sprintf("📊 %s directories and %s files %s, %s already present",
		c.Style("Count", fmt.Sprint(result.Count(types.ItemDirectory, types.StatusCreated))),
		c.Style("Count", fmt.Sprint(result.Count(types.ItemFile, types.StatusCreated))),
		verb,
		c.Style("Count", fmt.Sprint(result.Count(types.ItemDirectory, types.StatusExists)+
			result.Count(types.ItemFile, types.StatusExists))),
	))

	if len(nextSteps) == 0 {
		return
	}

	steps := c.ExpandNextSteps(nextSteps, NextStepData{Root: result.Root, AbsRoot: absRoot})
	if c.noColor {
		c.println("")
		c.println("📋 Next steps:")
		for i, step := range steps {
			c.println(fmt.Sprintf("   %d. %s", i+1, step))
		}
		return
	}

	var md strings.Builder
	md.WriteString("## 📋 Next steps\n\n")
	for i, step := range steps {
		fmt.Fprintf(&md, "%d. %s\n", i+1, step)
	}
	_, _ = fmt.Fprint(c.w, c.markdown.Render(md.String()))
}

// ExpandNextSteps executes each step as a text/template. A step that fails
// to parse or execute is kept verbatim.
func (c *Console) ExpandNextSteps(steps []string, data NextStepData) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		tmpl, err := template.New("step").Option("missingkey=error").Parse(step)
		if err != nil {
			c.logger.Warn().Err(err).Str("step", step).Msg("Invalid next step template")
			out = append(out, step)
			continue
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			c.logger.Warn().Err(err).Str("step", step).Msg("Failed to expand next step")
			out = append(out, step)
			continue
		}
		out = append(out, buf.String())
	}
	return out
}

// Error prints err with the error style
func (c *Console) Error(err error) {
	c.println(c.Style("Error", "❌ Error:") + " " + err.Error())
}

// Resolution prints the rule chosen for filename and the content it yields.
// Markdown content is rendered through glamour when color is on.
func (c *Console) Resolution(filename, rule, content string) {
	c.println(fmt.Sprintf("%s %s %s", c.Style("Path", filename), c.Style("Muted", "->"), c.Style("RuleName", rule)))
	if content == "" {
		c.println(c.Style("Muted", "(empty file)"))
	} else if !c.noColor && strings.EqualFold(filepath.Ext(filename), ".md") {
		_, _ = fmt.Fprint(c.w, c.markdown.Render(content))
	} else {
		_, _ = fmt.Fprint(c.w, content)
		if !strings.HasSuffix(content, "\n") {
			c.println("")
		}
	}
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.w, s)
}
