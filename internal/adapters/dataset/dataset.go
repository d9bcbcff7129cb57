// Package dataset loads the roster snapshot: the raw team entries, the rule
// table and the identity table. The engine itself is source-agnostic; this
// adapter owns the YAML shape, whether embedded or read from disk.
package dataset

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/undokai/rostercheck/internal/domain/identity"
	"github.com/undokai/rostercheck/internal/domain/model"
)

// Dataset is one immutable roster snapshot.
type Dataset struct {
	School     string
	Entries    []model.RawEntry
	Rules      model.RuleTable
	Identities identity.Table
}

// Load reads a dataset from a YAML file.
func Load(path string) (*Dataset, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadDataset, path, err)
	}
	d, err := decode(k.Raw())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Default returns the embedded dataset for the school's entry sheets.
func Default() (*Dataset, error) {
	raw, err := yaml.Parser().Unmarshal(defaultDataset)
	if err != nil {
		return nil, fmt.Errorf("%w: embedded dataset: %v", ErrLoadDataset, err)
	}
	return decode(raw)
}

// decode maps the parsed YAML tree onto domain types. Members and identity
// values are union-shaped (bare string or object, single record or list), so
// decoding walks raw values instead of relying on struct unmarshalling.
func decode(root map[string]interface{}) (*Dataset, error) {
	d := &Dataset{
		School:     asString(root["school"]),
		Rules:      make(model.RuleTable),
		Identities: make(identity.Table),
	}

	if rules, ok := root["rules"].(map[string]interface{}); ok {
		for name, v := range rules {
			rule, err := decodeRule(v)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", name, err)
			}
			d.Rules[model.EventKind(name)] = rule
		}
	}

	entries, ok := root["entries"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: missing entries list", ErrInvalidDataset)
	}
	for i, v := range entries {
		e, err := decodeEntry(v)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		d.Entries = append(d.Entries, e)
	}

	if ids, ok := root["identities"].(map[string]interface{}); ok {
		for name, v := range ids {
			val, err := decodeIdentity(v)
			if err != nil {
				return nil, fmt.Errorf("identity %q: %w", name, err)
			}
			d.Identities[name] = val
		}
	}

	if err := model.ValidateEntries(d.Entries); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeRule(v interface{}) (model.Rule, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return model.Rule{}, fmt.Errorf("%w: rule must be a mapping", ErrInvalidDataset)
	}
	r := model.Rule{
		TeamSize:        asInt(m["team_size"]),
		GenderSeparated: asBool(m["gender_separated"]),
	}
	if genders, ok := m["genders"].([]interface{}); ok {
		for _, g := range genders {
			r.Genders = append(r.Genders, asString(g))
		}
	}
	return r, nil
}

func decodeEntry(v interface{}) (model.RawEntry, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return model.RawEntry{}, fmt.Errorf("%w: entry must be a mapping", ErrInvalidDataset)
	}
	e := model.RawEntry{
		EventName: model.EventKind(asString(m["event_name"])),
		Team:      asString(m["team"]),
		Details:   asString(m["details"]),
	}
	members, ok := m["members"].([]interface{})
	if !ok {
		return model.RawEntry{}, fmt.Errorf("%w: entry has no members list", ErrInvalidDataset)
	}
	for i, mv := range members {
		member, err := decodeMember(mv)
		if err != nil {
			return model.RawEntry{}, fmt.Errorf("member %d: %w", i, err)
		}
		e.Members = append(e.Members, member)
	}
	return e, nil
}

func decodeMember(v interface{}) (model.Member, error) {
	switch mv := v.(type) {
	case string:
		return model.Member{Name: mv}, nil
	case map[string]interface{}:
		return model.Member{
			Name:       asString(mv["name"]),
			Grade:      asInt(mv["grade"]),
			Department: asString(mv["department"]),
		}, nil
	default:
		return model.Member{}, fmt.Errorf("%w: member must be a name or a mapping", ErrInvalidDataset)
	}
}

func decodeIdentity(v interface{}) (identity.Value, error) {
	switch iv := v.(type) {
	case map[string]interface{}:
		return identity.Single(decodeRecord(iv)), nil
	case []interface{}:
		records := make([]identity.Record, 0, len(iv))
		for _, rv := range iv {
			m, ok := rv.(map[string]interface{})
			if !ok {
				return identity.Value{}, fmt.Errorf("%w: identity list item must be a mapping", ErrInvalidDataset)
			}
			records = append(records, decodeRecord(m))
		}
		return identity.Many(records...), nil
	default:
		return identity.Value{}, fmt.Errorf("%w: identity must be a record or a list of records", ErrInvalidDataset)
	}
}

func decodeRecord(m map[string]interface{}) identity.Record {
	return identity.Record{
		Grade:      asInt(m["grade"]),
		Department: asString(m["department"]),
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
