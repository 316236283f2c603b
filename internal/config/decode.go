package config

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// jsonNumberRegexp matches literals that encoding/json accepts as numbers.
var jsonNumberRegexp = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// maxAliasExpansions bounds how many alias references one document may expand.
const maxAliasExpansions = 1000

// parseDocument turns YAML (or JSON) bytes into a generic document.
// Scalars keep their source text where it matters: floats become json.Number so
// versionName: 1.0 stays "1.0" instead of collapsing to 1.
func parseDocument(data []byte) (map[string]interface{}, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, ValidationErrors{malformed("", "failed to parse YAML: %v", err)}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ValidationErrors{malformed("", "document is empty")}
	}

	// A typed decode applies yaml.v3's own alias checks (self reference, expansion ratio)
	// before the node walk below expands anything.
	var raw interface{}
	if err := root.Decode(&raw); err != nil {
		return nil, ValidationErrors{malformed("", "failed to parse YAML: %v", err)}
	}

	w := &nodeWalker{expanding: make(map[*yaml.Node]bool)}
	value, err := w.value(root.Content[0])
	if err != nil {
		return nil, ValidationErrors{malformed("", "%v", err)}
	}
	doc, ok := value.(map[string]interface{})
	if !ok {
		return nil, ValidationErrors{malformed("", "document must be a mapping of sections")}
	}
	return doc, nil
}

// nodeWalker converts YAML nodes to generic values, expanding aliases and merge keys.
type nodeWalker struct {
	expanding  map[*yaml.Node]bool
	expansions int
}

func (w *nodeWalker) value(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return w.value(n.Content[0])
	case yaml.AliasNode:
		return w.alias(n)
	case yaml.MappingNode:
		return w.mapping(n)
	case yaml.SequenceNode:
		s := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := w.value(c)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case yaml.ScalarNode:
		return scalarValue(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

func (w *nodeWalker) alias(n *yaml.Node) (interface{}, error) {
	if n.Alias == nil {
		return nil, fmt.Errorf("line %d: unknown anchor %q", n.Line, n.Value)
	}
	if w.expanding[n.Alias] {
		return nil, fmt.Errorf("line %d: anchor %q refers to itself", n.Line, n.Value)
	}
	w.expansions++
	if w.expansions > maxAliasExpansions {
		return nil, fmt.Errorf("line %d: too many alias expansions", n.Line)
	}
	w.expanding[n.Alias] = true
	defer delete(w.expanding, n.Alias)
	return w.value(n.Alias)
}

// mapping builds a map. Keys written in the mapping win over keys pulled in
// through "<<" merges; among merged mappings the first one listed wins.
func (w *nodeWalker) mapping(n *yaml.Node) (interface{}, error) {
	m := make(map[string]interface{}, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge" {
			merges = append(merges, val)
			continue
		}
		v, err := w.value(val)
		if err != nil {
			return nil, err
		}
		m[key.Value] = v
	}

	for _, merge := range merges {
		sources := []*yaml.Node{merge}
		if merge.Kind == yaml.SequenceNode {
			sources = merge.Content
		}
		for _, src := range sources {
			v, err := w.value(src)
			if err != nil {
				return nil, err
			}
			merged, ok := v.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("line %d: merge value must be a mapping", src.Line)
			}
			for k, mv := range merged {
				if _, exists := m[k]; !exists {
					m[k] = mv
				}
			}
		}
	}
	return m, nil
}

func scalarValue(n *yaml.Node) (interface{}, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return b, nil
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i, nil
		}
		return n.Value, nil
	case "!!float":
		if jsonNumberRegexp.MatchString(n.Value) {
			return json.Number(n.Value), nil
		}
		return n.Value, nil
	}
	return n.Value, nil
}

// section returns a nested mapping, or nil when absent or null.
func section(doc map[string]interface{}, name string) map[string]interface{} {
	m, _ := doc[name].(map[string]interface{})
	return m
}

// intField reads an integer-valued key. Strings are parsed with parse (e.g. API level codenames).
func intField(sec map[string]interface{}, field string, parse func(string) (int, error)) (int, *ValidationError) {
	switch v := sec[lastSegment(field)].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			if v < math.MinInt32 || v > math.MaxInt32 {
				e := malformed(field, "%s is out of range", strconv.FormatFloat(v, 'g', -1, 64))
				return 0, &e
			}
			return int(v), nil
		}
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		if f, err := v.Float64(); err == nil && f == math.Trunc(f) {
			if f < math.MinInt32 || f > math.MaxInt32 {
				e := malformed(field, "%s is out of range", v.String())
				return 0, &e
			}
			return int(f), nil
		}
	case string:
		n, err := parse(v)
		if err != nil {
			e := malformed(field, "%v", err)
			return 0, &e
		}
		return n, nil
	}
	e := malformed(field, "must be an integer, got %v", sec[lastSegment(field)])
	return 0, &e
}

// textField reads a key that may hold a string or a bare YAML number.
func textField(sec map[string]interface{}, key string) string {
	switch v := sec[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func lastSegment(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[i+1:]
	}
	return field
}

func parseDecimal(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// decodeSettings maps a shape-checked document onto BuildSettings.
func decodeSettings(doc map[string]interface{}) (BuildSettings, error) {
	var s BuildSettings
	var errs ValidationErrors

	app := section(doc, "application")
	s.ApplicationID = strings.TrimSpace(textField(app, "applicationId"))
	if s.ApplicationID == "" {
		errs = append(errs, malformed("application.applicationId", "must not be empty"))
	}

	sdk := section(doc, "sdk")
	for _, f := range []struct {
		field string
		dst   *int
	}{
		{"sdk.compileApiLevel", &s.CompileAPILevel},
		{"sdk.minApiLevel", &s.MinAPILevel},
		{"sdk.targetApiLevel", &s.TargetAPILevel},
	} {
		n, err := intField(sdk, f.field, ParseAPILevel)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		*f.dst = n
	}

	ver := section(doc, "versioning")
	if n, err := intField(ver, "versioning.versionCode", parseDecimal); err != nil {
		errs = append(errs, *err)
	} else {
		s.VersionCode = n
	}
	s.VersionName = textField(ver, "versionName")
	if strings.TrimSpace(s.VersionName) == "" {
		errs = append(errs, malformed("versioning.versionName", "must not be empty"))
	}

	s.ToolchainVersion = strings.TrimSpace(textField(section(doc, "toolchain"), "toolchainVersion"))

	compat := section(doc, "compatibility")
	for _, f := range []struct {
		key string
		dst *LanguageLevel
	}{
		{"sourceCompatibilityLevel", &s.SourceCompatibility},
		{"targetCompatibilityLevel", &s.TargetCompatibility},
	} {
		level, err := ParseLanguageLevel(textField(compat, f.key))
		if err != nil {
			errs = append(errs, malformed("compatibility."+f.key, "%v (supported: %s)", err, joinLevels()))
			continue
		}
		*f.dst = level
	}
	s.DesugaringEnabled, _ = compat["desugaringEnabled"].(bool)

	s.DesugaringLibrary = strings.TrimSpace(textField(section(doc, "dependencies"), "desugaringLibraryDependency"))

	if len(errs) > 0 {
		return BuildSettings{}, errs
	}
	return s, nil
}

func joinLevels() string {
	names := make([]string, len(supportedLanguageLevels))
	for i, l := range supportedLanguageLevels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
