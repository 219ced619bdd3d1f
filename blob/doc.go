// Package blob unwraps region chunk blobs into tag trees.
//
// A chunk blob is the byte range a region's location table points at. It starts with a
// 5-byte prefix followed by the compressed tree and sector padding:
//
//	+---------------+--------+---------------------------+-----------+
//	| length L (4B) | method | payload (L-1 bytes, zlib) | padding   |
//	+---------------+--------+---------------------------+-----------+
//
// L is big-endian and counts the method byte. Only method 2 (zlib) is accepted; every
// other method fails with errs.ErrUnsupportedCompression. Bytes after the payload are
// never read.
//
// # Decoding
//
//	root, err := blob.Decode(chunkBlob)
//	if err != nil {
//	    return err
//	}
//
// A Decoder shares one tag decoder and its limits across many blobs:
//
//	tags, _ := nbt.NewDecoder(nbt.WithNameInterning(intern.DefaultSize))
//	dec, _ := blob.NewDecoder(blob.WithTagDecoder(tags))
//	for _, b := range blobs {
//	    root, err := dec.Decode(b)
//	    ...
//	}
//
// Decode inflates into a pooled buffer that is reused once the tree has been copied out.
// Decompress returns the inflated bytes themselves, for callers that parse them some other
// way.
//
// # Errors
//
// Corrupt or short zlib streams fail with errs.ErrTruncated. A stream inflating past the
// configured size fails with errs.ErrResourceLimit.
package blob
