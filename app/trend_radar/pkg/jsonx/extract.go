// Package jsonx 从模型返回的文本中提取 JSON。
//
// 模型经常在 JSON 外面包一层解释文字或 markdown 代码块，这里按字节扫描找出
// 第一个括号配平且语法合法的顶层对象。
package jsonx

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmpty 响应文本为空
	ErrEmpty = errors.New("jsonx: empty response")
	// ErrNotFound 文本中没有合法的顶层 JSON 对象
	ErrNotFound = errors.New("jsonx: no json object found")
)

// Extract 返回文本中第一个语法合法的顶层 JSON 对象
func Extract(text string) (string, error) {
	if len(text) == 0 {
		return "", ErrEmpty
	}
	for _, c := range candidates(text) {
		if json.Valid([]byte(c)) {
			return c, nil
		}
	}
	return "", ErrNotFound
}

// Decode 提取第一个合法对象并反序列化到 v
func Decode(text string, v any) error {
	obj, err := Extract(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("jsonx: unmarshal: %w", err)
	}
	return nil
}

// candidates 扫描所有括号配平的顶层 {...} 片段。
// 字符串内部的括号和转义字符会被跳过；ASCII 分隔符不会出现在 UTF-8 多字节序列中，按字节遍历是安全的。
func candidates(s string) []string {
	var (
		out      []string
		depth    int
		start    = -1
		inString bool
		escaped  bool
	)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch b {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			// 对象之外的引号（比如解释文字里的引用）不影响扫描
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				out = append(out, s[start:i+1])
				start = -1
			}
		}
	}
	return out
}
