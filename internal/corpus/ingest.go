// Package corpus provides the reference-corpus store and retrieval over it.
package corpus

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	fetchTimeout   = 30 * time.Second
	fetchUserAgent = "Mozilla/5.0 (compatible; termsmith/1.0)"
	// fetchParallelism bounds concurrent downloads. Embedding and storage
	// stay sequential; only the network fetch fans out.
	fetchParallelism = 4
)

// ChunkSink persists embedded chunks. *Store satisfies this.
type ChunkSink interface {
	SaveChunks(ctx context.Context, chunks []Chunk) error
}

// Ingestor loads reference legal documents from URLs, splits them into
// chunks, embeds each chunk, and persists the result
type Ingestor struct {
	embedder Embedder
	sink     ChunkSink
	client   *http.Client
}

// NewIngestor creates an ingestor over an embedder and a chunk sink
func NewIngestor(embedder Embedder, sink ChunkSink) *Ingestor {
	return &Ingestor{
		embedder: embedder,
		sink:     sink,
		client:   &http.Client{Timeout: fetchTimeout},
	}
}

// fetchedDoc is one downloaded reference document
type fetchedDoc struct {
	url  string
	text string
}

// IngestCSV loads every Terms/Privacy URL listed in the CSV, fetches and
// chunks the documents, embeds the chunks, and stores them. Returns the
// number of chunks created. Individual URL failures are logged and skipped;
// the ingest fails only if no document loads at all.
func (ing *Ingestor) IngestCSV(ctx context.Context, csvPath string) (int, error) {
	urls, err := ReadURLCSV(csvPath)
	if err != nil {
		return 0, err
	}
	if len(urls) == 0 {
		return 0, &IngestError{Message: fmt.Sprintf("no URLs found in %s", csvPath)}
	}

	log.Printf("Loading %d URLs...", len(urls))

	var mu sync.Mutex
	var docs []fetchedDoc

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(fetchParallelism)
	for _, pageURL := range urls {
		group.Go(func() error {
			text, err := ing.fetchText(groupCtx, pageURL)
			if err != nil {
				log.Printf("  skipping %s: %v", pageURL, err)
				return nil
			}
			mu.Lock()
			docs = append(docs, fetchedDoc{url: pageURL, text: text})
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, &IngestError{Message: "fetch aborted", Cause: err}
	}
	if len(docs) == 0 {
		return 0, &IngestError{Message: "no documents were successfully loaded"}
	}

	log.Printf("Loaded %d documents, splitting and embedding...", len(docs))

	total := 0
	for _, doc := range docs {
		docType := InferDocType(doc.url)
		pieces := SplitText(doc.text)

		chunks := make([]Chunk, 0, len(pieces))
		for _, piece := range pieces {
			embedding, err := ing.embedder.EmbedText(ctx, piece)
			if err != nil {
				return total, &IngestError{Message: fmt.Sprintf("failed to embed chunk from %s", doc.url), Cause: err}
			}
			chunks = append(chunks, Chunk{
				ID:        uuid.New(),
				SourceURL: doc.url,
				DocType:   docType,
				Content:   piece,
				Embedding: embedding,
			})
		}

		if err := ing.sink.SaveChunks(ctx, chunks); err != nil {
			return total, &IngestError{Message: fmt.Sprintf("failed to store chunks from %s", doc.url), Cause: err}
		}
		total += len(chunks)
	}

	log.Printf("Stored %d chunks", total)
	return total, nil
}

// fetchText downloads a page and extracts its readable text
func (ing *Ingestor) fetchText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := ing.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return ExtractText(string(body))
}

// ExtractText pulls the readable text out of an HTML page, dropping
// script, style, and navigation noise
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, header, footer, noscript").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return cleanWhitespace(text), nil
}

var (
	multiSpaceRe   = regexp.MustCompile(`[ \t]+`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// cleanWhitespace normalizes runs of whitespace in extracted text
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpaceRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// ReadURLCSV reads the "Terms URL" and "Privacy URL" columns from a CSV file
func ReadURLCSV(csvPath string) ([]string, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, &IngestError{Message: fmt.Sprintf("failed to open %s", csvPath), Cause: err}
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &IngestError{Message: fmt.Sprintf("failed to parse %s", csvPath), Cause: err}
	}
	if len(records) == 0 {
		return nil, nil
	}

	termsCol, privacyCol := -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case "Terms URL":
			termsCol = i
		case "Privacy URL":
			privacyCol = i
		}
	}

	var urls []string
	for _, record := range records[1:] {
		for _, col := range []int{termsCol, privacyCol} {
			if col >= 0 && col < len(record) {
				if u := strings.TrimSpace(record[col]); u != "" {
					urls = append(urls, u)
				}
			}
		}
	}
	return urls, nil
}

// InferDocType guesses the document type from a URL
func InferDocType(pageURL string) string {
	u := strings.ToLower(pageURL)
	switch {
	case strings.Contains(u, "privacy") || strings.Contains(u, "policy"):
		return "privacy"
	case strings.Contains(u, "terms") || strings.Contains(u, "tos") || strings.Contains(u, "user-agreement"):
		return "tos"
	default:
		return "unknown"
	}
}
