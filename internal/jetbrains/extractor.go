package jetbrains

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"runconfig-converter/internal/common"
	"runconfig-converter/internal/config"
	"runconfig-converter/internal/diagnostic"
	"runconfig-converter/internal/pathtoken"
	"runconfig-converter/internal/runconfig"
)

// ErrUnexpectedFactory is returned for a "tests" configuration whose
// factoryName is not the pytest factory.
var ErrUnexpectedFactory = errors.New("unexpected test factory")

// Option names read from a configuration.
const (
	OptionScriptName       = "SCRIPT_NAME"
	OptionParameters       = "PARAMETERS"
	OptionWorkingDirectory = "WORKING_DIRECTORY"
)

// Result is the outcome of one extraction.
type Result struct {
	// Configurations in display order.
	Configurations []runconfig.Configuration
	// Diagnostics describes the skipped elements.
	Diagnostics diagnostic.Diagnostics
}

// Extractor turns workspace documents into normalized configurations.
type Extractor struct {
	cfg      *config.Config
	rewriter pathtoken.Rewriter
}

// NewExtractor creates an extractor for the given converter configuration.
func NewExtractor(cfg *config.Config) *Extractor {
	return &Extractor{
		cfg:      cfg,
		rewriter: cfg.Rewriter(),
	}
}

// ExtractFile reads and extracts the workspace file at path.
func (e *Extractor) ExtractFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace file %s: %w", path, err)
	}
	defer f.Close()

	return e.Extract(f)
}

// Extract decodes a workspace document and returns its recognized
// configurations sorted by group priority and order. When a configuration
// aborts the run, the error comes back together with a Result carrying the
// diagnostics gathered so far and no configurations.
func (e *Extractor) Extract(r io.Reader) (*Result, error) {
	var root element

	dec := xml.NewDecoder(r)

	err := dec.Decode(&root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workspace XML: %w", err)
	}

	if err := expectEOF(dec); err != nil {
		return nil, fmt.Errorf("failed to parse workspace XML: %w", err)
	}

	nodes := root.descendants("configuration")
	if root.XMLName.Local == "configuration" {
		nodes = append([]*element{&root}, nodes...)
	}

	result := &Result{}
	groups := e.cfg.GroupTable()
	seen := make(map[string]bool)

	for _, node := range nodes {
		c, ok, err := e.extractOne(node, groups, seen, &result.Diagnostics)
		if err != nil {
			result.Configurations = nil
			return result, err
		}

		if ok {
			result.Configurations = append(result.Configurations, c)
		}
	}

	runconfig.Sort(result.Configurations)

	return result, nil
}

// expectEOF consumes the rest of the document. Only whitespace, comments and
// processing instructions may follow the root element.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("unexpected text after root element")
			}
		default:
			return errors.New("unexpected content after root element")
		}
	}
}

// extractOne converts a single configuration element. It reports false for
// elements that are skipped.
func (e *Extractor) extractOne(
	node *element,
	groups *runconfig.GroupTable,
	seen map[string]bool,
	diags *diagnostic.Diagnostics,
) (runconfig.Configuration, bool, error) {
	typ := node.attr("type")
	name := node.attr("name")

	kind, ok := ParseKind(typ)
	if !ok {
		diags.AddInfo(diagnostic.CodeUnknownType,
			fmt.Sprintf("configuration type %q is not supported, skipped", typ), name, "type")

		return runconfig.Configuration{}, false, nil
	}

	if kind == KindTests {
		factory := node.attr("factoryName")
		if factory != e.cfg.Pytest.Factory {
			diags.AddError(diagnostic.CodeUnexpectedFactory,
				fmt.Sprintf("unexpected type '%s'", factory), name, "factoryName")

			return runconfig.Configuration{}, false,
				fmt.Errorf("%w '%s' in configuration %q", ErrUnexpectedFactory, factory, name)
		}
	}

	if name == "" {
		diags.AddInfo(diagnostic.CodeEmptyName, "configuration without a name skipped", "", "name")
		return runconfig.Configuration{}, false, nil
	}

	if seen[name] {
		diags.AddInfo(diagnostic.CodeDuplicateName, "duplicate configuration skipped", name, "name")
		return runconfig.Configuration{}, false, nil
	}

	seen[name] = true

	c := runconfig.New(name, typ)

	group := groups.RunGroup()
	if kind == KindTests {
		c.Module = e.rewriter.Rewrite(e.cfg.Pytest.Module)
		group = groups.TestGroup()
	} else if folder := node.attr("folderName"); folder != "" {
		group = folder
	}

	if err := groups.Place(&c, group); err != nil {
		diags.AddError(diagnostic.CodeUnknownGroup, err.Error(), name, "folderName")
		return runconfig.Configuration{}, false, err
	}

	e.applyOptions(&c, node)
	e.applyEnvs(&c, node)

	return c, true, nil
}

func (e *Extractor) applyOptions(c *runconfig.Configuration, node *element) {
	for _, opt := range node.descendants("option") {
		value := opt.attr("value")

		switch opt.attr("name") {
		case OptionScriptName:
			c.Program = e.rewriter.Rewrite(value)
		case OptionParameters:
			// An empty value means no args, not a single empty one.
			c.Args = e.rewriter.RewriteAll(common.SplitSpaces(value))
		case OptionWorkingDirectory:
			c.Cwd = e.rewriter.Rewrite(value)
		case e.cfg.Pytest.ExtraArgsOption:
			if value != "" {
				c.Args = append(c.Args, e.rewriter.RewriteAll(splitExtraArgs(value))...)
			}
		}
	}
}

func (e *Extractor) applyEnvs(c *runconfig.Configuration, node *element) {
	for _, envs := range node.descendants("envs") {
		for _, env := range envs.descendants("env") {
			name := env.attr("name")
			if name == "" || name == e.cfg.UnbufferedEnv {
				continue
			}

			if c.Env == nil {
				c.Env = make(map[string]string)
			}

			c.Env[name] = env.attr("value")
		}
	}
}

// splitExtraArgs unwraps the pytest additional-arguments value: the
// enclosing characters are dropped, backslashes and double quotes removed,
// and the rest split on single spaces. An empty remainder yields one empty
// token.
func splitExtraArgs(value string) []string {
	runes := []rune(value)
	if len(runes) < 2 {
		runes = nil
	} else {
		runes = runes[1 : len(runes)-1]
	}

	stripped := strings.NewReplacer(`\`, "", `"`, "").Replace(string(runes))

	return strings.Split(stripped, " ")
}
