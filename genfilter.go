// Package genfilter generates output files from XML template files by
// expanding plugin extension points embedded in a reserved namespace.
//
// A template is an ordinary XML document that carries extension constructs in
// the genfilter namespace. The filter streams the document from parser to
// serializer, replaces each extension construct with the output of a
// registered action, and strips the reserved namespace from the result.
//
// # Basic Usage
//
// Create a generator with the feature values contributed by installed plugins
// and run it over a template file:
//
//	features := genfilter.FeatureTable{
//	    "package.support.name": {"<name>DocBook</name>"},
//	}
//	gen := genfilter.MustNewGenerator(features, nil)
//	err := gen.Generate(ctx, "/build/catalog_template.xml")
//	// writes /build/catalog.xml
//
// The output path is derived from the template path by removing the template
// marker ("_template." by default).
//
// # Extension Forms
//
// Element extensions replace a whole element with an action's event stream:
//
//	<gen:extension id="package.support.name" behavior="genfilter.insert"
//	               xmlns:gen="https://github.com/itsatony/go-genfilter"/>
//
// Attribute extensions compute the value of a single attribute. The extension
// declaration lists (localname, handler) pairs, and each listed localname has
// a matching data attribute in the reserved namespace on the same element:
//
//	<project gen:extension="depends genfilter.join" gen:depends="a,b"
//	         xmlns:gen="https://github.com/itsatony/go-genfilter"/>
//	<!-- emits: <project depends="a,b"> with the value produced by the action -->
//
// # Custom Actions
//
// Extend genfilter by implementing the Action interface, usually by embedding
// BaseAction, and registering a factory:
//
//	type UpperAction struct{ genfilter.BaseAction }
//
//	func (a *UpperAction) Result(ctx context.Context) (string, error) {
//	    return strings.ToUpper(strings.Join(a.Input(), " ")), nil
//	}
//
//	gen.Registry().MustRegister("myplugin.upper", func() genfilter.Action {
//	    return &UpperAction{}
//	})
//
// Every action is constructed fresh for each extension occurrence and receives
// the template path as its "template" parameter, the plugin table, and the
// contributed feature values as its ordered input.
//
// # Error Handling
//
// Configuration problems (unknown action identifiers, malformed extension
// declarations, a template path without the marker) abort the document and
// leave no output file behind. Failures inside an action are logged and the
// offending element or attribute is dropped while the rest of the document is
// still generated.
package genfilter
