package base16

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/extras"
)

const contentType = "application/base16"

// Codec adapts the base16 encoding to the extras.Codec seam.
// Marshal accepts a []byte and produces its lower-case hex form;
// Unmarshal fills a *[]byte from hex text. The zero value is ready to use.
type Codec struct{}

var _ extras.Codec = Codec{}

// ContentType returns the MIME type for base16.
func (Codec) ContentType() string {
	return contentType
}

// Marshal encodes v, which must be a []byte, as lower-case hex.
func (Codec) Marshal(v any) ([]byte, error) {
	ctx := context.Background()
	start := time.Now()

	buf, ok := v.([]byte)
	if !ok {
		err := extras.NewCodecError(extras.ErrMarshal, errTypeAssert(v))
		emitEncodeComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}

	emitEncodeStart(ctx, len(buf))
	s, err := Encode(buf, false)
	if err != nil {
		err = extras.NewCodecError(extras.ErrMarshal, err)
		emitEncodeComplete(ctx, len(buf), time.Since(start), err)
		return nil, err
	}

	emitEncodeComplete(ctx, len(buf), time.Since(start), nil)
	return []byte(s), nil
}

// Unmarshal decodes hex text in data into v, which must be a *[]byte.
func (Codec) Unmarshal(data []byte, v any) error {
	ctx := context.Background()
	start := time.Now()
	emitDecodeStart(ctx, len(data))

	out, ok := v.(*[]byte)
	if !ok || out == nil {
		err := extras.NewCodecError(extras.ErrUnmarshal, errTypeAssert(v))
		emitDecodeComplete(ctx, len(data), time.Since(start), err)
		return err
	}

	buf, err := Decode(string(data))
	if err != nil {
		err = extras.NewCodecError(extras.ErrUnmarshal, err)
		emitDecodeComplete(ctx, len(data), time.Since(start), err)
		return err
	}

	*out = buf
	emitDecodeComplete(ctx, len(data), time.Since(start), nil)
	return nil
}

func errTypeAssert(v any) error {
	return fmt.Errorf("unsupported value of type %T", v)
}
