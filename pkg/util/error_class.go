package util

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"strings"
)

// ClassifyError 把出站调用的错误归类，用作日志字段和 metrics label
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	// context 先判断：超时的 url.Error 同时也是 net.Error
	if errors.Is(err, context.Canceled) {
		return "context_canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}

	// Network errors
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return "network_timeout"
		}
		return "network_error"
	}

	// JSON decode errors（上游返回了非预期格式）
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || strings.Contains(err.Error(), "json:") {
		return "json_decode_error"
	}

	return "unknown_error"
}

// StatusLabel 有 HTTP 状态码时用状态码，否则用错误分类
func StatusLabel(status int, err error) string {
	if status != 0 {
		return strconv.Itoa(status)
	}
	if err != nil {
		return ClassifyError(err)
	}
	return "unknown"
}
