package heroku

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after an exchange. resp is nil when err is
// set.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response, err error) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) *InterceptorChain {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)

	return c
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) *InterceptorChain {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)

	return c
}

// ExecuteRequestInterceptors runs all request interceptors in order.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors in order.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response, err error) error {
	for _, interceptor := range c.responseInterceptors {
		interceptErr := interceptor(ctx, req, resp, err)
		if interceptErr != nil {
			return fmt.Errorf("response interceptor failed: %w", interceptErr)
		}
	}

	return nil
}

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response, err error) error {
		fields := map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		}

		if err != nil {
			fields["error"] = err.Error()
			logger.Error("API Response Error", fields)

			return nil
		}

		fields["status_code"] = resp.StatusCode
		if id := resp.RequestID(); id != "" {
			fields["request_id"] = id
		}

		if resp.IsSuccess() {
			logger.Debug("API Response", fields)
		} else {
			logger.Warn("API Response Failure", fields)
		}

		return nil
	}
}

// HeaderInterceptor adds static headers to requests, e.g. Heroku's
// X-Heroku-Sudo or Range.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// Metrics aggregates calls to one endpoint.
type Metrics struct {
	TotalRequests      int64
	TotalErrors        int64
	TotalLatency       time.Duration
	AverageLatency     time.Duration
	LastRequestTime    time.Time
	RateLimitRemaining int
}

// MetricsCollector collects API metrics keyed by "METHOD path".
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(endpoint string, metrics Metrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange sets a callback invoked with a snapshot whenever metrics change.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot of the metrics for an endpoint.
func (m *MetricsCollector) GetMetrics(endpoint string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		return Metrics{}, false
	}

	return *metrics, true
}

const startTimeKey = "start_time"

// MetricsRequestInterceptor records request start time.
func MetricsRequestInterceptor(collector *MetricsCollector) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[startTimeKey] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records response metrics.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response, err error) error {
		endpoint := fmt.Sprintf("%s %s", req.Method, req.Path)

		collector.mu.Lock()

		metrics, ok := collector.metrics[endpoint]
		if !ok {
			metrics = &Metrics{}
			collector.metrics[endpoint] = metrics
		}

		metrics.TotalRequests++
		metrics.LastRequestTime = time.Now()

		if startTime, ok := req.Metadata[startTimeKey].(time.Time); ok {
			metrics.TotalLatency += time.Since(startTime)
			metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
		}

		if err != nil || !resp.IsSuccess() {
			metrics.TotalErrors++
		}

		if resp != nil {
			if remaining, ok := resp.RateLimitRemaining(); ok {
				metrics.RateLimitRemaining = remaining
			}
		}

		snapshot := *metrics
		onChange := collector.onChange

		collector.mu.Unlock()

		if onChange != nil {
			onChange(endpoint, snapshot)
		}

		return nil
	}
}
