// Package md5 computes the MD5 message digest described in RFC 1321.
//
// The whole message is hashed in a single pass over one buffer; there is no
// incremental API. MD5 is cryptographically broken and is provided here only
// as a deterministic fingerprint.
package md5

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// The size of an MD5 checksum in bytes.
const Size = 16

// The block size of MD5 in bytes.
const BlockSize = 64

// Sum returns the MD5 checksum of data.
func Sum(data []byte) [Size]byte {
	return compress(initialState(), pad(data)).bytes()
}

// Digest returns the MD5 checksum of data as 32 lowercase hex characters.
func Digest(data []byte) string {
	return finalize(compress(initialState(), pad(data)))
}

// Md5 reads r until EOF and returns the hex digest of everything read. If
// the read fails nothing is hashed and the error is returned.
func Md5(r io.Reader) (string, error) {
	return Md5WithDecoding(r, Raw)
}

// Md5WithDecoding is like Md5 but passes the input through the given
// decoding policy before hashing.
func Md5WithDecoding(r io.Reader, d Decoding) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return Digest(d.Apply(data)), nil
}

// DigestAll hashes each message independently and concurrently. The
// returned digests are in the same order as msgs. The only possible error
// is the context's.
func DigestAll(ctx context.Context, msgs [][]byte) ([]string, error) {
	out := make([]string, len(msgs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range msgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrapf(err, "digesting message %d", i)
			}
			out[i] = Digest(msgs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
