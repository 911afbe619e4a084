package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Widget types for rendering fields.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetBool
	WidgetEnum
	WidgetCount
	WidgetSkip
)

// Field represents a component field with rendering hints.
type Field struct {
	Name    string
	Value   any
	Widget  Widget
	Options map[string]string
	Max     float64 // Resolved bar maximum
}

// ParseTag parses an inspect struct tag.
// Format: `inspect:"widget[,option:value...]"`
// Examples:
//
//	`inspect:"bar"`
//	`inspect:"bar,max:200"`
//	`inspect:"bar,max:field:MaxHealth"`
//	`inspect:"label,fmt:%.1f"`
//	`inspect:"enum"`
//	`inspect:"count"`
//	`inspect:"skip"`
func ParseTag(tag string) (Widget, map[string]string) {
	options := make(map[string]string)

	if tag == "" {
		return WidgetAuto, options
	}

	parts := strings.Split(tag, ",")
	widgetStr := strings.TrimSpace(parts[0])

	var widget Widget
	switch widgetStr {
	case "label":
		widget = WidgetLabel
	case "bar":
		widget = WidgetBar
	case "bool":
		widget = WidgetBool
	case "enum":
		widget = WidgetEnum
	case "count":
		widget = WidgetCount
	case "skip":
		widget = WidgetSkip
	default:
		widget = WidgetAuto
	}

	// Parse options
	for _, part := range parts[1:] {
		kv := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(kv) == 2 {
			options[kv[0]] = kv[1]
		}
	}

	return widget, options
}

// ExtractFields uses reflection to extract all fields from a component.
func ExtractFields(component any) []Field {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	var fields []Field

	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)

		// Skip unexported fields
		if !sf.IsExported() {
			continue
		}

		widget, options := ParseTag(sf.Tag.Get("inspect"))
		if widget == WidgetSkip {
			continue
		}

		// Auto-detect widget if not specified
		if widget == WidgetAuto {
			widget = autoDetectWidget(fv)
		}

		f := Field{
			Name:    sf.Name,
			Value:   fv.Interface(),
			Widget:  widget,
			Options: options,
		}
		if widget == WidgetBar {
			f.Max = resolveMax(v, options)
		}
		fields = append(fields, f)
	}

	return fields
}

// autoDetectWidget chooses a widget based on the field type.
func autoDetectWidget(v reflect.Value) Widget {
	if _, ok := v.Interface().(fmt.Stringer); ok {
		return WidgetEnum
	}
	switch v.Kind() {
	case reflect.Bool:
		return WidgetBool
	case reflect.Map, reflect.Slice, reflect.Array:
		return WidgetCount
	default:
		return WidgetLabel
	}
}

// resolveMax reads the max option, either a literal or "field:Name" naming
// a numeric sibling field. Defaults to 1.
func resolveMax(v reflect.Value, options map[string]string) float64 {
	maxStr, ok := options["max"]
	if !ok {
		return 1
	}
	if name, ok := strings.CutPrefix(maxStr, "field:"); ok {
		fv := v.FieldByName(name)
		if !fv.IsValid() {
			return 1
		}
		if m, ok := GetFloatValue(fv.Interface()); ok && m > 0 {
			return m
		}
		return 1
	}
	if m, err := strconv.ParseFloat(maxStr, 64); err == nil && m > 0 {
		return m
	}
	return 1
}

// FormatValue formats a field value as a string.
func FormatValue(value any, fmtStr string) string {
	if fmtStr == "" {
		switch v := value.(type) {
		case float32:
			return fmt.Sprintf("%.2f", v)
		case float64:
			return fmt.Sprintf("%.2f", v)
		default:
			return fmt.Sprintf("%v", value)
		}
	}
	return fmt.Sprintf(fmtStr, value)
}

// FormatField renders a field's value as display text.
func FormatField(f Field) string {
	switch f.Widget {
	case WidgetEnum:
		if s, ok := f.Value.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", f.Value)
	case WidgetCount:
		return strconv.Itoa(Count(f.Value))
	case WidgetBool:
		if b, ok := f.Value.(bool); ok && b {
			return "yes"
		}
		return "no"
	default:
		return FormatValue(f.Value, f.Options["fmt"])
	}
}

// Count returns the length of a map, slice or array value, or 0.
func Count(value any) int {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return v.Len()
	default:
		return 0
	}
}

// GetFloatValue extracts a float64 from various numeric types.
func GetFloatValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint32:
		return float64(v), true
	default:
		return 0, false
	}
}
