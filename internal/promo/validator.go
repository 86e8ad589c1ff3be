// Package promo validates promotional codes printed on flyers and seasonal
// mailers. Code lists are plain text, one code per line, optionally gzipped,
// and are fetched once at startup. Validation is advisory: a valid code never
// modifies the order payload sent to the backend.
package promo

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	minCodeLen = 4
	maxCodeLen = 12
)

// Validator checks promo codes against the loaded code lists.
type Validator struct {
	mu    sync.RWMutex
	lists []codeList
}

// codeList is one loaded code file.
type codeList struct {
	source string
	codes  map[string]bool
}

// listLoadResult carries one file's outcome back from its loader goroutine.
type listLoadResult struct {
	index int
	list  codeList
	err   error
}

// NewValidator creates an empty validator. Until LoadFromURLs succeeds every
// code reports invalid.
func NewValidator() *Validator {
	return &Validator{}
}

// Enabled reports whether any code list has been loaded.
func (v *Validator) Enabled() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.lists) > 0
}

// LoadFromURLs fetches all code lists concurrently. It fails if any list
// cannot be loaded, leaving the validator unchanged.
func (v *Validator) LoadFromURLs(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return fmt.Errorf("no promo list URLs provided")
	}

	resultChan := make(chan listLoadResult, len(urls))

	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(index int, listURL string) {
			defer wg.Done()

			codes, err := loadFromURL(ctx, listURL)
			resultChan <- listLoadResult{
				index: index,
				list:  codeList{source: listURL, codes: codes},
				err:   err,
			}
		}(i, u)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]listLoadResult, len(urls))
	for result := range resultChan {
		results[result.index] = result
	}

	for i, result := range results {
		if result.err != nil {
			return fmt.Errorf("failed to load promo list %d: %w", i+1, result.err)
		}
	}

	lists := make([]codeList, len(results))
	for i, result := range results {
		lists[i] = result.list
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.lists = lists
	return nil
}

// loadFromURL downloads and parses one code list. Gzipped lists are detected
// by the .gz suffix.
func loadFromURL(ctx context.Context, url string) (map[string]bool, error) {
	client := &http.Client{Timeout: time.Minute}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var reader io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") {
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	return parseCodes(reader)
}

// parseCodes reads one code per line into a set, normalizing case.
func parseCodes(r io.Reader) (map[string]bool, error) {
	codes := make(map[string]bool)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			codes[strings.ToUpper(line)] = true
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}

	return codes, nil
}

// IsValid reports whether code is a known promo code: 4-12 characters after
// trimming, case-insensitive, present in at least one loaded list.
func (v *Validator) IsValid(ctx context.Context, code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < minCodeLen || len(code) > maxCodeLen {
		return false
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, list := range v.lists {
		if list.codes[code] {
			return true
		}
	}
	return false
}

// GetStats returns counts about the loaded lists, for the admin surface.
func (v *Validator) GetStats() map[string]interface{} {
	v.mu.RLock()
	defer v.mu.RUnlock()

	listSizes := make([]int, len(v.lists))
	totalCodes := 0
	for i, list := range v.lists {
		listSizes[i] = len(list.codes)
		totalCodes += len(list.codes)
	}

	return map[string]interface{}{
		"total_lists": len(v.lists),
		"list_sizes":  listSizes,
		"total_codes": totalCodes,
	}
}
