// Command loadtest drives a running focustimer daemon with concurrent session
// writes and aggregate reads and prints per-endpoint latency percentiles.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	numWorkers  = 50
	historyDays = 56
)

var (
	baseURL      = flag.String("url", "http://127.0.0.1:8095", "daemon base URL")
	testDuration = flag.Duration("duration", 10*time.Second, "duration of each phase")
)

var statViews = []string{"weekly", "daily", "hourly", "heatmap", "summary"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type endpointStats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	flag.Parse()

	fmt.Println("=== focustimer load test ===")
	fmt.Printf("Target: %s | Workers: %d | Phase: %s\n\n", *baseURL, numWorkers, *testDuration)

	fmt.Print("Waiting for daemon... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(*baseURL + "/health")
		if err == nil {
			drain(resp)
			break
		}
		if i == 29 {
			fmt.Println("FAILED: daemon not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding history (POST /sessions) ---")
	runPhase(*testDuration, doPostSession)

	fmt.Println("\n--- Phase 2: Mixed load (30% writes, 70% reads) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.30:
			return doPostSession(rng)
		case r < 0.80:
			return doGetStats(rng)
		case r < 0.90:
			return doGet("/sessions")
		default:
			return doGet("/timer")
		}
	})

	fmt.Println("\n--- Phase 3: Read-heavy load (2% writes) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.02 {
			return doPostSession(rng)
		}
		return doGetStats(rng)
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
					totalOps.Add(1)
				}
			}
		}(rand.Uint64())
	}

	all := make(map[string]*endpointStats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := all[r.endpoint]
			if !ok {
				s = &endpointStats{}
				all[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(all, duration)
}

func printResults(all map[string]*endpointStats, duration time.Duration) {
	var totalOps, totalErrors int64

	endpoints := make([]string, 0, len(all))
	for ep := range all {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := all[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

type sessionBody struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `json:"duration"`
	Source    string    `json:"source"`
}

// doPostSession records a random session from the last eight weeks.
func doPostSession(rng *rand.Rand) result {
	day := time.Now().AddDate(0, 0, -rng.IntN(historyDays))
	start := time.Date(day.Year(), day.Month(), day.Day(), 7+rng.IntN(12), rng.IntN(60), 0, 0, time.Local)
	duration := 300 + rng.IntN(7200)
	data, _ := json.Marshal(sessionBody{
		StartTime: start,
		EndTime:   start.Add(time.Duration(duration) * time.Second),
		Duration:  duration,
		Source:    "loadtest",
	})

	const endpoint = "POST /sessions"
	begin := time.Now()
	resp, err := httpClient.Post(*baseURL+"/sessions", "application/json", bytes.NewReader(data))
	lat := time.Since(begin)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	drain(resp)
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusCreated}
}

func doGetStats(rng *rand.Rand) result {
	return doGet("/stats/" + statViews[rng.IntN(len(statViews))])
}

func doGet(path string) result {
	endpoint := "GET " + path
	begin := time.Now()
	resp, err := httpClient.Get(*baseURL + path)
	lat := time.Since(begin)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	drain(resp)
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
