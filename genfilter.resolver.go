package genfilter

import (
	"strings"
)

// extensionPair is one (localname, handler identifier) entry of an
// attribute-extension declaration.
type extensionPair struct {
	local   string
	handler string
}

// parseExtensionPairs tokenizes an attribute-extension declaration. Tokens
// are whitespace-delimited and consumed strictly in pairs; an empty
// declaration or an odd number of tokens is a malformed-declaration error
// reported against the given document location.
func parseExtensionPairs(decl, template, element string) ([]extensionPair, error) {
	tokens := strings.Fields(decl)
	if len(tokens) == 0 {
		return nil, NewMalformedDeclarationError(ErrMsgEmptyExtensionDecl, decl, template, element)
	}
	if len(tokens)%2 != 0 {
		return nil, NewMalformedDeclarationError(ErrMsgMalformedExtensionDecl, decl, template, element)
	}

	pairs := make([]extensionPair, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		pairs = append(pairs, extensionPair{local: tokens[i], handler: tokens[i+1]})
	}
	return pairs, nil
}

// findExtensionPair returns the pair whose localname matches the given data
// attribute localname.
func findExtensionPair(pairs []extensionPair, local string) (extensionPair, bool) {
	for _, pair := range pairs {
		if pair.local == local {
			return pair, true
		}
	}
	return extensionPair{}, false
}

// splitFeatureValues splits an attribute-extension data value into the
// action's ordered input sequence.
func splitFeatureValues(value, separator string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, separator)
}
