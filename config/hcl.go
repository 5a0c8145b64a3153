package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/rios0rios0/scmbridge/internal/domain/entities"
)

var (
	rootSchema = &hcl.BodySchema{ //nolint:gochecknoglobals // static schema
		Attributes: []hcl.AttributeSchema{
			{Name: "version"},
		},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "server"},
			{Type: "provider", LabelNames: []string{"id"}},
		},
	}

	serverSchema = &hcl.BodySchema{ //nolint:gochecknoglobals // static schema
		Attributes: []hcl.AttributeSchema{
			{Name: "address"},
		},
	}

	providerSchema = &hcl.BodySchema{ //nolint:gochecknoglobals // static schema
		Attributes: []hcl.AttributeSchema{
			{Name: "kind"},
			{Name: "label"},
			{Name: "context_value"},
			{Name: "root_uri"},
			{Name: "count"},
			{Name: "selected"},
			{Name: "commit_template"},
			{Name: "placeholder"},
			{Name: "max_subject_length"},
		},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "command", LabelNames: []string{"id"}},
			{Type: "accept_input_command", LabelNames: []string{"id"}},
			{Type: "status"},
		},
	}

	commandSchema = &hcl.BodySchema{ //nolint:gochecknoglobals // static schema
		Attributes: []hcl.AttributeSchema{
			{Name: "label"},
			{Name: "category"},
			{Name: "tooltip"},
			{Name: "arguments"},
		},
	}

	statusSchema = &hcl.BodySchema{ //nolint:gochecknoglobals // static schema
		Attributes: []hcl.AttributeSchema{
			{Name: "exists"},
			{Name: "branch"},
			{Name: "upstream_branch"},
			{Name: "current_head"},
			{Name: "incomplete"},
			{Name: "ahead"},
			{Name: "behind"},
		},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "change", LabelNames: []string{"uri"}},
		},
	}

	changeSchema = &hcl.BodySchema{ //nolint:gochecknoglobals // static schema
		Attributes: []hcl.AttributeSchema{
			{Name: "status", Required: true},
			{Name: "old_uri"},
			{Name: "staged"},
		},
	}
)

// decodeHCL parses an HCL workspace file. Expressions may reference the
// process environment as env.NAME.
func decodeHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	decoder := &attrDecoder{ctx: newEvalContext()}
	var cfg Config

	decoder.use(content.Attributes)
	decodeInto(decoder, "version", cty.String, &cfg.Version)

	for _, block := range content.Blocks {
		switch block.Type {
		case "server":
			decoder.body(block.Body, serverSchema, func(*hcl.BodyContent) {
				decodeInto(decoder, "address", cty.String, &cfg.Server.Address)
			})
		case "provider":
			cfg.Providers = append(cfg.Providers, decodeProvider(decoder, block))
		}
	}

	if decoder.diags.HasErrors() {
		return nil, decoder.diags
	}
	return &cfg, nil
}

func decodeProvider(decoder *attrDecoder, block *hcl.Block) ProviderConfig {
	provider := ProviderConfig{ID: block.Labels[0]}

	decoder.body(block.Body, providerSchema, func(content *hcl.BodyContent) {
		decodeInto(decoder, "kind", cty.String, &provider.Kind)
		decodeInto(decoder, "label", cty.String, &provider.Label)
		decodeInto(decoder, "context_value", cty.String, &provider.ContextValue)
		decodeInto(decoder, "root_uri", cty.String, &provider.RootURI)
		decodeInto(decoder, "selected", cty.Bool, &provider.Selected)
		decodeInto(decoder, "commit_template", cty.String, &provider.CommitTemplate)
		decodeInto(decoder, "placeholder", cty.String, &provider.Placeholder)
		decodeInto(decoder, "max_subject_length", cty.Number, &provider.MaxSubjectLength)
		if _, ok := content.Attributes["count"]; ok {
			var count int
			decodeInto(decoder, "count", cty.Number, &count)
			provider.Count = &count
		}

		for _, nested := range content.Blocks {
			switch nested.Type {
			case "command":
				provider.StatusBarCommands = append(provider.StatusBarCommands, decodeCommand(decoder, nested))
			case "accept_input_command":
				command := decodeCommand(decoder, nested)
				provider.AcceptInputCommand = &command
			case "status":
				status := decodeStatus(decoder, nested)
				provider.Status = &status
			}
		}
	})

	return provider
}

func decodeCommand(decoder *attrDecoder, block *hcl.Block) entities.Command {
	command := entities.Command{ID: block.Labels[0]}
	decoder.body(block.Body, commandSchema, func(*hcl.BodyContent) {
		decodeInto(decoder, "label", cty.String, &command.Label)
		decodeInto(decoder, "category", cty.String, &command.Category)
		decodeInto(decoder, "tooltip", cty.String, &command.Tooltip)
		decodeInto(decoder, "arguments", cty.List(cty.String), &command.Arguments)
	})
	return command
}

func decodeStatus(decoder *attrDecoder, block *hcl.Block) entities.WorkingDirectoryStatus {
	var status entities.WorkingDirectoryStatus
	decoder.body(block.Body, statusSchema, func(content *hcl.BodyContent) {
		decodeInto(decoder, "exists", cty.Bool, &status.Exists)
		decodeInto(decoder, "branch", cty.String, &status.Branch)
		decodeInto(decoder, "upstream_branch", cty.String, &status.UpstreamBranch)
		decodeInto(decoder, "current_head", cty.String, &status.CurrentHead)
		decodeInto(decoder, "incomplete", cty.Bool, &status.Incomplete)

		_, hasAhead := content.Attributes["ahead"]
		_, hasBehind := content.Attributes["behind"]
		if hasAhead || hasBehind {
			status.AheadBehind = &entities.AheadBehind{}
			decodeInto(decoder, "ahead", cty.Number, &status.AheadBehind.Ahead)
			decodeInto(decoder, "behind", cty.Number, &status.AheadBehind.Behind)
		}

		for _, nested := range content.Blocks {
			status.Changes = append(status.Changes, decodeChange(decoder, nested))
		}
	})
	return status
}

func decodeChange(decoder *attrDecoder, block *hcl.Block) entities.FileChange {
	change := entities.FileChange{URI: block.Labels[0]}
	decoder.body(block.Body, changeSchema, func(content *hcl.BodyContent) {
		var name string
		decodeInto(decoder, "status", cty.String, &name)
		if name != "" {
			status, err := entities.ParseFileStatus(name)
			if err != nil {
				decoder.fail(content.Attributes["status"], err)
			}
			change.Status = status
		}
		decodeInto(decoder, "old_uri", cty.String, &change.OldURI)
		decodeInto(decoder, "staged", cty.Bool, &change.Staged)
	})
	return change
}

// newEvalContext exposes the process environment as the `env` object.
func newEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, pair := range os.Environ() {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

// attrDecoder evaluates attributes of the body currently being decoded and
// collects every diagnostic instead of stopping at the first one.
type attrDecoder struct {
	ctx   *hcl.EvalContext
	attrs hcl.Attributes
	diags hcl.Diagnostics
}

func (d *attrDecoder) use(attrs hcl.Attributes) {
	d.attrs = attrs
}

// body decodes the block body against schema and runs fn with its
// attributes in scope. The previous scope is restored afterwards.
func (d *attrDecoder) body(body hcl.Body, schema *hcl.BodySchema, fn func(*hcl.BodyContent)) {
	content, diags := body.Content(schema)
	d.diags = append(d.diags, diags...)
	if diags.HasErrors() {
		return
	}

	previous := d.attrs
	d.attrs = content.Attributes
	fn(content)
	d.attrs = previous
}

func (d *attrDecoder) fail(attr *hcl.Attribute, err error) {
	diag := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid value",
		Detail:   err.Error(),
	}
	if attr != nil {
		diag.Detail = fmt.Sprintf("%s: %v", attr.Name, err)
		diag.Subject = attr.Expr.Range().Ptr()
	}
	d.diags = append(d.diags, diag)
}

// decodeInto evaluates the named attribute, converts it to want and stores
// it in target. Absent and null attributes leave target untouched.
func decodeInto[T any](d *attrDecoder, name string, want cty.Type, target *T) {
	attr, ok := d.attrs[name]
	if !ok {
		return
	}

	value, diags := attr.Expr.Value(d.ctx)
	d.diags = append(d.diags, diags...)
	if diags.HasErrors() || value.IsNull() {
		return
	}

	converted, err := convert.Convert(value, want)
	if err == nil {
		err = gocty.FromCtyValue(converted, target)
	}
	if err != nil {
		d.fail(attr, err)
	}
}
