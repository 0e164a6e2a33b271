package llm

import (
	"encoding/json"
	"sort"
)

// Type 输出结构中的字段类型
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema 声明式输出结构，是 JSON Schema 的一个小子集
type Schema struct {
	Type       Type
	Properties map[string]*Schema
	Items      *Schema
	Enum       []string
	Required   []string
}

// Object 构造对象类型，所有属性都标记为必填
func Object(props map[string]*Schema) *Schema {
	s := &Schema{Type: TypeObject, Properties: props}
	for k := range props {
		s.Required = append(s.Required, k)
	}
	sort.Strings(s.Required)
	return s
}

// Array 构造数组类型
func Array(items *Schema) *Schema { return &Schema{Type: TypeArray, Items: items} }

func String() *Schema  { return &Schema{Type: TypeString} }
func Number() *Schema  { return &Schema{Type: TypeNumber} }
func Integer() *Schema { return &Schema{Type: TypeInteger} }
func Boolean() *Schema { return &Schema{Type: TypeBoolean} }

// Enum 构造取值受限的字符串类型
func Enum(values ...string) *Schema { return &Schema{Type: TypeString, Enum: values} }

// Strings 字符串数组
func Strings() *Schema { return Array(String()) }

// Map 转为 JSON Schema 风格的 map，用于写进提示词
func (s *Schema) Map() map[string]any {
	if s == nil {
		return nil
	}
	m := map[string]any{"type": string(s.Type)}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for k, v := range s.Properties {
			props[k] = v.Map()
		}
		m["properties"] = props
	}
	if s.Items != nil {
		m["items"] = s.Items.Map()
	}
	if len(s.Enum) > 0 {
		m["enum"] = s.Enum
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	return m
}

// String 以缩进 JSON 输出
func (s *Schema) String() string {
	b, err := json.MarshalIndent(s.Map(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
