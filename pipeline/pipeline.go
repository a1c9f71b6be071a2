// Package pipeline wires the stages together: resolve the input resources,
// parse the supplementary definitions and the grammar, convert, and write
// the result. Output is written incrementally; a failure after the first
// write leaves the partial output in place.
package pipeline

import (
	"io"
	"os"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/syndiag/yacc2ebnf/convert"
	"github.com/syndiag/yacc2ebnf/ebnf"
	"github.com/syndiag/yacc2ebnf/ebnfdef"
	"github.com/syndiag/yacc2ebnf/source"
	"github.com/syndiag/yacc2ebnf/yaccdef"
)

// Resolver loads a named input resource.
type Resolver interface {
	Resolve(name string) ([]byte, error)
}

// FileResolver resolves resource names as filesystem paths.
type FileResolver struct{}

func (FileResolver) Resolve(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Options configure a run. The zero value uses default thresholds and
// discards log output.
type Options struct {
	Convert convert.Options
	Logger  *zap.Logger
}

// Run reads the grammar and supplementary resources through res, converts,
// and writes every resulting definition to out: grammar-derived definitions
// in dependency order, then the supplementary definitions, then a blank
// line. An empty suppName means no supplementary definitions.
func Run(res Resolver, out io.Writer, grammarName, suppName string, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var supp []ebnf.Definition
	if suppName != "" {
		content, e := res.Resolve(suppName)
		if e != nil {
			return errors.Annotatef(e, "cannot read %q", suppName)
		}

		supp, e = ebnfdef.Parse(source.New(suppName, content))
		if e != nil {
			return errors.Trace(e)
		}
		log.Debug("supplementary definitions parsed",
			zap.String("resource", suppName), zap.Int("definitions", len(supp)))
	}

	content, e := res.Resolve(grammarName)
	if e != nil {
		return errors.Annotatef(e, "cannot read %q", grammarName)
	}

	g, e := yaccdef.Parse(source.New(grammarName, content))
	if e != nil {
		return errors.Trace(e)
	}
	log.Debug("grammar parsed",
		zap.String("resource", grammarName), zap.Int("productions", g.Len()))

	defs, e := convert.Convert(g, supp, opts.Convert)
	if e != nil {
		return errors.Trace(e)
	}
	log.Info("grammar converted",
		zap.Int("productions", g.Len()),
		zap.Int("definitions", len(defs)+len(supp)))

	if e = ebnf.WriteDefinitions(out, defs); e != nil {
		return errors.Annotate(e, "cannot write output")
	}
	if e = ebnf.WriteDefinitions(out, supp); e != nil {
		return errors.Annotate(e, "cannot write output")
	}
	_, e = io.WriteString(out, "\n")
	return errors.Annotate(e, "cannot write output")
}
