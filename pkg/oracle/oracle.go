package oracle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/pkg/services"
)

// ErrInferencePaused means the target project has inference switched
// off; no call was issued.
var ErrInferencePaused = errors.New("inference paused for project")

// cacheSize bounds the in-memory result cache.
const cacheSize = 1024

// InvokeInput is one oracle request with its accounting context.
type InvokeInput struct {
	Level  inferencecall.Level
	Prompt string

	ProjectID *int
	AgentID   *int
	CommandID *int
	TurnID    *int
}

// Oracle wraps a Provider with the input-hash cache, the per-project
// pause gate, and call logging.
type Oracle struct {
	provider Provider
	log      *services.InferenceLogService
	projects *services.ProjectService
	timeout  time.Duration

	mu    sync.Mutex
	cache map[string]string
	order []string

	now func() time.Time
}

// New creates an oracle invoker.
func New(provider Provider, log *services.InferenceLogService, projects *services.ProjectService, timeout time.Duration) *Oracle {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Oracle{
		provider: provider,
		log:      log,
		projects: projects,
		timeout:  timeout,
		cache:    make(map[string]string),
		now:      time.Now,
	}
}

// Invoke issues one inference. A repeated prompt at the same level is
// answered from the cache: the call row is still recorded, with
// cached=true and zero token counts.
func (o *Oracle) Invoke(ctx context.Context, input InvokeInput) (string, error) {
	if input.Prompt == "" {
		return "", services.NewValidationError("prompt", "required")
	}

	if input.ProjectID != nil {
		paused, err := o.projects.InferencePaused(ctx, *input.ProjectID)
		if err != nil {
			return "", err
		}
		if paused {
			return "", ErrInferencePaused
		}
	}

	hash := InputHash(string(input.Level), input.Prompt)

	if text, ok := o.lookup(hash); ok {
		_, err := o.log.Record(ctx, services.RecordCallInput{
			Level:     input.Level,
			InputHash: hash,
			Cached:    true,
			ProjectID: input.ProjectID,
			AgentID:   input.AgentID,
			CommandID: input.CommandID,
			TurnID:    input.TurnID,
		})
		if err != nil {
			return "", err
		}
		return text, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	started := o.now()
	result, err := o.provider.Infer(callCtx, input.Prompt)
	if err != nil {
		return "", err
	}
	latency := int(o.now().Sub(started).Milliseconds())

	if _, err := o.log.Record(ctx, services.RecordCallInput{
		Level:            input.Level,
		InputHash:        hash,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		CostUSD:          result.CostUSD,
		LatencyMS:        latency,
		ProjectID:        input.ProjectID,
		AgentID:          input.AgentID,
		CommandID:        input.CommandID,
		TurnID:           input.TurnID,
	}); err != nil {
		return "", err
	}

	o.store(hash, result.Text)
	return result.Text, nil
}

// InputHash is the cache key: SHA-256 over level and prompt.
func InputHash(level, prompt string) string {
	h := sha256.New()
	h.Write([]byte(level))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}

func (o *Oracle) lookup(hash string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	text, ok := o.cache[hash]
	return text, ok
}

func (o *Oracle) store(hash, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.cache[hash]; ok {
		return
	}
	if len(o.order) >= cacheSize {
		oldest := o.order[0]
		o.order = o.order[1:]
		delete(o.cache, oldest)
	}
	o.cache[hash] = text
	o.order = append(o.order, hash)
}

// Close releases the underlying provider.
func (o *Oracle) Close() error {
	if o.provider == nil {
		return nil
	}
	if err := o.provider.Close(); err != nil {
		return fmt.Errorf("failed to close inference provider: %w", err)
	}
	return nil
}
