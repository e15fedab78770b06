package host

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/el"
	"github.com/loom-ui/loom/pkg/hooks"
)

// Component is anything renderable by a view.
type Component interface {
	Render(*hooks.Ctx) *el.VNode
}

// ComponentFunc wraps a render function as a Component.
type ComponentFunc func(*hooks.Ctx) *el.VNode

// Render calls the wrapped function.
func (f ComponentFunc) Render(ctx *hooks.Ctx) *el.VNode {
	return f(ctx)
}

// Frame is one committed render: the serialized tree plus a sequence number.
type Frame struct {
	Seq  uint64
	HTML string
}

// viewIDCounter generates unique view IDs.
var viewIDCounter atomic.Uint64

// View drives one root component through the hooks render cycle.
type View struct {
	id     string
	logger *slog.Logger
	metricsRecorder
	tracer trace.Tracer

	rt   *hooks.Runtime
	inst *hooks.Instance
	root Component

	// handlers maps generated handler IDs to click callbacks, rebuilt on
	// every committed render. Touched only on the view's loop.
	handlers   map[string]func()
	handlerSeq int

	// onFrame and onTitle receive committed frames and document title
	// changes, invoked on the view's loop.
	onFrame func(Frame)
	onTitle func(string)

	// needsRender coalesces schedule callbacks between ticks.
	needsRender atomic.Bool

	mu        sync.Mutex
	title     string
	lastFrame Frame
	frameSeq  uint64

	dispatchCh chan func()
	renderCh   chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
}

// metricsRecorder isolates the nil-metrics case so View code never checks.
type metricsRecorder struct {
	m *Metrics
}

func (r metricsRecorder) renderDone(d time.Duration) {
	if r.m == nil {
		return
	}
	r.m.rendersTotal.Inc()
	r.m.renderDuration.Observe(d.Seconds())
}

func (r metricsRecorder) frame() {
	if r.m != nil {
		r.m.framesSent.Inc()
	}
}

func (r metricsRecorder) renderError() {
	if r.m != nil {
		r.m.renderErrors.Inc()
	}
}

func (r metricsRecorder) effectError() {
	if r.m != nil {
		r.m.effectErrors.Inc()
	}
}

func (r metricsRecorder) click() {
	if r.m != nil {
		r.m.clicksTotal.Inc()
	}
}

func (r metricsRecorder) loopStarted() {
	if r.m != nil {
		r.m.activeViews.Inc()
	}
}

func (r metricsRecorder) loopStopped() {
	if r.m != nil {
		r.m.activeViews.Dec()
	}
}

// Option configures a View.
type Option func(*View)

// WithLogger sets the view's structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) { v.logger = logger }
}

// WithMetrics attaches host metrics to the view.
func WithMetrics(m *Metrics) Option {
	return func(v *View) { v.metricsRecorder = metricsRecorder{m: m} }
}

// WithTracer sets the tracer used for render tick spans.
func WithTracer(t trace.Tracer) Option {
	return func(v *View) { v.tracer = t }
}

// OnFrame registers the committed-frame sink. Called on the view's loop;
// the callback must not block for long.
func OnFrame(fn func(Frame)) Option {
	return func(v *View) { v.onFrame = fn }
}

// OnTitle registers the document-title sink.
func OnTitle(fn func(string)) Option {
	return func(v *View) { v.onTitle = fn }
}

// NewView creates a view for the given root component. Nothing renders until
// Run or RenderNow is called.
func NewView(root Component, opts ...Option) *View {
	v := &View{
		id:         "v" + strconv.FormatUint(viewIDCounter.Add(1), 10),
		logger:     slog.Default(),
		root:       root,
		handlers:   make(map[string]func()),
		dispatchCh: make(chan func(), 64),
		renderCh:   make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.tracer == nil {
		v.tracer = otel.Tracer("loom.host")
	}

	v.rt = hooks.New(v.scheduleRender)
	v.inst = v.rt.NewInstance()
	return v
}

// ID returns the view's unique identifier.
func (v *View) ID() string { return v.id }

// scheduleRender is the runtime's re-render callback. It only flips a flag
// and pokes the loop; the actual render happens on the loop (or at the next
// Settle in synchronous mode).
func (v *View) scheduleRender(*hooks.Instance) {
	v.needsRender.Store(true)
	select {
	case v.renderCh <- struct{}{}:
	default:
	}
}

// SetTitle records a document title change and notifies the title sink.
// It is the sink effects write to, the demo's counterpart of mutating
// document.title after paint.
func (v *View) SetTitle(title string) {
	v.mu.Lock()
	changed := v.title != title
	v.title = title
	v.mu.Unlock()

	if changed && v.onTitle != nil {
		v.onTitle(title)
	}
}

// Title returns the current document title.
func (v *View) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

// LastFrame returns the most recently committed frame.
func (v *View) LastFrame() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastFrame
}

// Dispatch queues fn to run on the view's event loop. It is the supported
// way to touch view state (including setters) from other goroutines.
func (v *View) Dispatch(fn func()) {
	select {
	case v.dispatchCh <- fn:
	case <-v.done:
	}
}

// HandleClick queues a click event for the handler with the given ID.
func (v *View) HandleClick(id string) {
	v.Dispatch(func() {
		v.invokeClick(id)
	})
}

func (v *View) invokeClick(id string) {
	handler, ok := v.handlers[id]
	if !ok {
		v.logger.Warn("click handler not found", "view", v.id, "handler", id)
		return
	}
	v.click()
	v.safeInvoke(id, handler)
}

// safeInvoke runs a click handler with panic recovery; a panicking handler
// must not take down the event loop.
func (v *View) safeInvoke(id string, handler func()) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("click handler panic", "view", v.id, "handler", id, "panic", r)
		}
	}()
	handler()
}

// RenderNow performs one synchronous render tick: render pass, handler
// resolution, frame commit, effect flush. It must only be called from the
// goroutine driving the view.
func (v *View) RenderNow() (Frame, error) {
	return v.tick(context.Background())
}

// Settle renders until no re-render is pending, up to maxPasses. It returns
// the last committed frame. Components whose effects perpetually re-trigger
// state exhaust the budget and get an error.
func (v *View) Settle(maxPasses int) (Frame, error) {
	frame, err := v.RenderNow()
	if err != nil {
		return frame, err
	}
	for i := 1; i < maxPasses; i++ {
		if !v.needsRender.Load() {
			return frame, nil
		}
		if frame, err = v.RenderNow(); err != nil {
			return frame, err
		}
	}
	if v.needsRender.Load() {
		return frame, fmt.Errorf("host: view %s did not settle after %d passes", v.id, maxPasses)
	}
	return frame, nil
}

// Click synchronously invokes the handler with the given ID and settles.
// Test/driver API; for live sessions use HandleClick.
func (v *View) Click(id string) (Frame, error) {
	v.invokeClick(id)
	if !v.needsRender.Load() {
		return v.LastFrame(), nil
	}
	return v.Settle(64)
}

// tick runs one full render cycle.
func (v *View) tick(ctx context.Context) (Frame, error) {
	ctx, span := v.tracer.Start(ctx, "host.render",
		trace.WithAttributes(attribute.String("loom.view", v.id)))
	defer span.End()
	start := time.Now()

	v.needsRender.Store(false)

	var tree *el.VNode
	err := v.rt.Render(v.inst, func(c *hooks.Ctx) {
		tree = v.root.Render(c)
	})
	if err != nil {
		v.renderError()
		span.RecordError(err)
		v.logger.Error("render failed", "view", v.id, "err", err)
		return Frame{}, err
	}

	// Commit: resolve handlers, serialize, publish the frame.
	v.handlers = make(map[string]func())
	v.handlerSeq = 0
	el.ResolveHandlers(tree, v.nextHandlerID, func(id string, fn func()) {
		v.handlers[id] = fn
	})
	html := el.RenderHTML(tree)

	v.mu.Lock()
	v.frameSeq++
	frame := Frame{Seq: v.frameSeq, HTML: html}
	v.lastFrame = frame
	v.mu.Unlock()

	span.SetAttributes(attribute.Int64("loom.frame_seq", int64(frame.Seq)))
	v.frame()
	if v.onFrame != nil {
		v.onFrame(frame)
	}

	// Effects run strictly after the committed output is published.
	if err := v.rt.FlushEffects(v.inst); err != nil {
		v.effectError()
		span.RecordError(err)
		v.logger.Error("effect flush failed", "view", v.id, "err", err)
		return frame, err
	}

	v.renderDone(time.Since(start))
	return frame, nil
}

func (v *View) nextHandlerID() string {
	v.handlerSeq++
	return "h" + strconv.Itoa(v.handlerSeq)
}

// Run renders the view and serves its event loop until ctx is cancelled or
// Close is called. The instance is unmounted on exit, running all
// outstanding effect cleanups. Run returns the first fatal error: a hook
// contract violation or a halted effect flush.
func (v *View) Run(ctx context.Context) error {
	v.loopStarted()
	defer v.loopStopped()

	defer func() {
		if err := v.rt.Unmount(v.inst); err != nil {
			v.logger.Error("unmount cleanup failed", "view", v.id, "err", err)
		}
	}()

	if _, err := v.tick(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-v.done:
			return nil
		case fn := <-v.dispatchCh:
			fn()
		case <-v.renderCh:
			if !v.needsRender.Load() {
				continue
			}
			if _, err := v.tick(ctx); err != nil {
				return err
			}
		}
	}
}

// Close stops the event loop. Safe to call from any goroutine, idempotent.
func (v *View) Close() {
	v.closeOnce.Do(func() { close(v.done) })
}

// Unmount tears the instance down without a running loop (synchronous mode).
func (v *View) Unmount() error {
	return v.rt.Unmount(v.inst)
}
