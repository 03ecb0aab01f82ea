package resource

import (
	"context"
	"io"
)

// ThrottledReader limits read throughput using the controller's IO limiter.
type ThrottledReader struct {
	ctx context.Context
	r   io.Reader
	rc  *Controller
}

// NewThrottledReader wraps r. With a nil controller or no IO limit it reads at full speed.
func NewThrottledReader(ctx context.Context, r io.Reader, rc *Controller) *ThrottledReader {
	return &ThrottledReader{
		ctx: ctx,
		r:   r,
		rc:  rc,
	}
}

func (t *ThrottledReader) Read(p []byte) (int, error) {
	if burst := t.rc.ioBurst(); burst > 0 && len(p) > burst {
		p = p[:burst]
	}

	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.rc.AcquireIO(t.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
