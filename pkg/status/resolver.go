// Package status turns raw codes received from a face sensor into text for
// display. Unknown codes never fail: they are logged as an integration problem
// and replaced by a generic message.
package status

import (
	"context"

	"github.com/Goden-Gun/facecodes/pkg/codes"
	log "github.com/Goden-Gun/facecodes/pkg/logger"
)

const (
	// FallbackErrorText is shown for error codes this build does not know.
	FallbackErrorText = "Face authentication error."
	// FallbackAcquisitionText is shown for acquisition codes this build does not know.
	FallbackAcquisitionText = "Face not recognized. Try again."
)

// Report is the resolved form of a single code.
type Report struct {
	Namespace codes.Namespace `json:"namespace"`
	Value     int32           `json:"value"`
	Symbol    string          `json:"symbol"`
	Text      string          `json:"text"`
	Class     codes.Class     `json:"class"`
	Lockout   bool            `json:"lockout,omitempty"`
	Internal  bool            `json:"internal,omitempty"`
}

// Resolver is read-only after construction and safe for concurrent use.
type Resolver struct {
	catalog *codes.Catalog
	logger  *log.Logger
}

type Option func(*Resolver)

// WithLogger routes classification warnings to l instead of the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver builds a Resolver. catalog may be nil.
func NewResolver(catalog *codes.Catalog, opts ...Option) *Resolver {
	r := &Resolver{catalog: catalog}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorText returns display text for a raw error code.
func (r *Resolver) ErrorText(ctx context.Context, raw int32) string {
	return r.ErrorReport(ctx, raw).Text
}

// AcquisitionText returns display text for a raw acquisition code.
func (r *Resolver) AcquisitionText(ctx context.Context, raw int32) string {
	return r.AcquisitionReport(ctx, raw).Text
}

// ErrorReport resolves a raw error code.
func (r *Resolver) ErrorReport(ctx context.Context, raw int32) Report {
	code := codes.ErrorCode(raw)
	rep := Report{
		Namespace: codes.NamespaceError,
		Value:     raw,
		Symbol:    code.String(),
		Class:     code.Classify(),
		Lockout:   code.IsLockout(),
	}
	if e, ok := code.Lookup(); ok {
		rep.Internal = e.Internal
	}
	text, err := r.catalog.ErrorMessage(code)
	if err != nil {
		r.warnUnknown(ctx, rep, err)
		text = FallbackErrorText
	}
	rep.Text = text
	return rep
}

// AcquisitionReport resolves a raw acquisition code.
func (r *Resolver) AcquisitionReport(ctx context.Context, raw int32) Report {
	code := codes.AcquisitionCode(raw)
	rep := Report{
		Namespace: codes.NamespaceAcquisition,
		Value:     raw,
		Symbol:    code.String(),
		Class:     code.Classify(),
	}
	if e, ok := code.Lookup(); ok {
		rep.Internal = e.Internal
	}
	text, err := r.catalog.AcquisitionMessage(code)
	if err != nil {
		r.warnUnknown(ctx, rep, err)
		text = FallbackAcquisitionText
	}
	rep.Text = text
	return rep
}

func (r *Resolver) warnUnknown(ctx context.Context, rep Report, err error) {
	log.TraceEntry(ctx, r.logger).WithFields(log.Fields{
		"namespace": rep.Namespace,
		"code":      rep.Value,
	}).WithError(err).Warn("unrecognized face status code, producer and consumer versions may differ")
}
