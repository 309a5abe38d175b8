package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// APIBenchmark drives concurrent requests against a running instance of the API.
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	AuthToken   string
	Client      *http.Client
}

// BenchmarkResult aggregates the outcome of one benchmark run.
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
	Body           []byte        `json:"-"`
}

// RequestResult holds the outcome of a single request.
type RequestResult struct {
	Duration   time.Duration
	StatusCode int
	Body       []byte
	Error      error
}

// NewAPIBenchmark creates a benchmark runner for the given base URL.
func NewAPIBenchmark(baseURL string, concurrency, requests int, authToken string) *APIBenchmark {
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		AuthToken:   authToken,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RunGET benchmarks a GET endpoint.
func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.runTest(http.MethodGet, b.BaseURL+path, nil)
}

// RunPOST benchmarks a POST endpoint with a JSON payload.
func (b *APIBenchmark) RunPOST(path string, payload interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return &BenchmarkResult{
			URL:    url,
			Method: http.MethodPost,
			Errors: []string{fmt.Sprintf("erro ao codificar JSON: %v", err)},
		}
	}
	return b.runTest(http.MethodPost, url, jsonData)
}

// RunPUT benchmarks a PUT endpoint with a JSON payload.
func (b *APIBenchmark) RunPUT(path string, payload interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return &BenchmarkResult{
			URL:    url,
			Method: http.MethodPut,
			Errors: []string{fmt.Sprintf("erro ao codificar JSON: %v", err)},
		}
	}
	return b.runTest(http.MethodPut, url, jsonData)
}

// RunDELETE benchmarks a DELETE endpoint.
func (b *APIBenchmark) RunDELETE(path string) *BenchmarkResult {
	return b.runTest(http.MethodDelete, b.BaseURL+path, nil)
}

func (b *APIBenchmark) runTest(method, url string, payload []byte) *BenchmarkResult {
	results := make(chan RequestResult, b.Requests)
	var wg sync.WaitGroup
	limiter := make(chan struct{}, b.Concurrency)

	startTime := time.Now()

	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			start := time.Now()
			req, err := http.NewRequest(method, url, bytes.NewBuffer(payload))
			if err != nil {
				results <- RequestResult{Error: err}
				return
			}

			req.Header.Set("Content-Type", "application/json")
			if b.AuthToken != "" {
				req.Header.Set("Authorization", "Bearer "+b.AuthToken)
			}

			resp, err := b.Client.Do(req)
			if err != nil {
				results <- RequestResult{Error: err}
				return
			}
			defer resp.Body.Close()

			var body bytes.Buffer
			body.ReadFrom(resp.Body)

			results <- RequestResult{
				Duration:   time.Since(start),
				StatusCode: resp.StatusCode,
				Body:       body.Bytes(),
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var minTime time.Duration = 1<<63 - 1
	var maxTime time.Duration
	var totalTime time.Duration
	successCount := 0
	failureCount := 0
	statusCodes := make(map[int]int)
	var errors []string
	var lastBody []byte

	for result := range results {
		if result.Error != nil {
			failureCount++
			errors = append(errors, result.Error.Error())
			continue
		}

		totalTime += result.Duration
		if result.Duration < minTime {
			minTime = result.Duration
		}
		if result.Duration > maxTime {
			maxTime = result.Duration
		}

		statusCodes[result.StatusCode]++
		if result.StatusCode >= 200 && result.StatusCode < 300 {
			successCount++
			lastBody = result.Body
		} else {
			failureCount++
		}
	}

	totalElapsed := time.Since(startTime)
	requestsPerSec := float64(b.Requests) / totalElapsed.Seconds()
	averageTime := time.Duration(0)
	if successCount+failureCount > 0 {
		averageTime = totalTime / time.Duration(successCount+failureCount)
	}

	return &BenchmarkResult{
		URL:            url,
		Method:         method,
		Concurrency:    b.Concurrency,
		TotalRequests:  b.Requests,
		SuccessCount:   successCount,
		FailureCount:   failureCount,
		TotalTime:      totalElapsed,
		AverageTime:    averageTime,
		MinTime:        minTime,
		MaxTime:        maxTime,
		RequestsPerSec: requestsPerSec,
		StatusCodes:    statusCodes,
		Errors:         errors,
		Body:           lastBody,
	}
}

// PrintResult writes a human readable summary of the run to stdout.
func (r *BenchmarkResult) PrintResult() {
	fmt.Printf("Resultado do benchmark:\n")
	fmt.Printf("URL: %s\n", r.URL)
	fmt.Printf("Método: %s\n", r.Method)
	fmt.Printf("Concorrência: %d\n", r.Concurrency)
	fmt.Printf("Total de requisições: %d\n", r.TotalRequests)
	fmt.Printf("Requisições com sucesso: %d\n", r.SuccessCount)
	fmt.Printf("Requisições com falha: %d\n", r.FailureCount)
	fmt.Printf("Tempo total: %s\n", r.TotalTime)
	fmt.Printf("Tempo médio: %s\n", r.AverageTime)
	fmt.Printf("Tempo mínimo: %s\n", r.MinTime)
	fmt.Printf("Tempo máximo: %s\n", r.MaxTime)
	fmt.Printf("Requisições por segundo: %.2f\n", r.RequestsPerSec)
	fmt.Printf("Distribuição de status:\n")
	for code, count := range r.StatusCodes {
		fmt.Printf("  %d: %d\n", code, count)
	}
	if len(r.Errors) > 0 {
		fmt.Printf("Erros (até 5):\n")
		for i, err := range r.Errors {
			if i >= 5 {
				fmt.Printf("  ... mais %d erros\n", len(r.Errors)-5)
				break
			}
			fmt.Printf("  %s\n", err)
		}
	}
}
