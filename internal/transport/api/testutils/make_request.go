package testutils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	if args.Router == nil {
		return nil, fmt.Errorf("make request %s %s: router is nil", args.Method, args.URL)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()

	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithJSON выставляет заголовки запроса с json телом.
func WithJSON() func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers["Content-Type"] = "application/json"
		fn.headers["Accept"] = "application/json"
	}
}

// WithBearer добавляет заголовок Authorization с jwt токеном.
func WithBearer(token string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers["Authorization"] = "Bearer " + token
	}
}
