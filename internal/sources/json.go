package sources

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexString accepts a JSON string, number or boolean. Providers are not
// consistent about which one they send.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	// null, objects, arrays and booleans carry nothing we use
	*f = ""
	return nil
}

func (f flexString) String() string {
	return strings.TrimSpace(string(f))
}

// Int returns the leading integer of the value, or 0.
func (f flexString) Int() int {
	s := f.String()
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// flexStrings accepts either a JSON array of strings or one string with
// comma or semicolon separated values.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	var list []flexString
	if err := json.Unmarshal(data, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, v := range list {
			if s := v.String(); s != "" {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}
	var s flexString
	_ = json.Unmarshal(data, &s)
	var out []string
	for _, part := range strings.FieldsFunc(s.String(), func(r rune) bool { return r == ',' || r == ';' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*f = out
	return nil
}

// textValue accepts a plain string or an object of the form {"value": "..."}.
type textValue string

func (t *textValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = textValue(s)
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*t = textValue(obj.Value)
		return nil
	}
	*t = ""
	return nil
}
