package main

import (
	"io"

	"github.com/grailbio/activity/interval"
	"github.com/grailbio/activity/rttm"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// dump writes one TSV row per mask in masks.  If region is nonempty, each
// row also gets the dense values of the mask over that region.
func dump(w io.Writer, masks rttm.Masks, region string) (err error) {
	var item interval.Item
	if region != "" {
		if item, err = interval.ParseSlice(region); err != nil {
			return errors.E(err, "--region")
		}
	}
	tsvw := tsv.NewWriter(w)
	tsvw.WriteString("#FILE\tSPEAKER\tCOUNT\tINTERVALS")
	if region != "" {
		tsvw.WriteString("DENSE")
	}
	if err = tsvw.EndLine(); err != nil {
		return
	}
	var dense []byte
	for _, key := range masks.Keys() {
		m := masks.Get(key.FileID, key.Speaker)
		tsvw.WriteString(key.FileID)
		tsvw.WriteString(key.Speaker)
		tsvw.WriteInt64(int64(m.Count()))
		tsvw.WriteString(m.Text())
		if region != "" {
			values, err := m.Get(item)
			if err != nil {
				return errors.E(err, key.FileID, key.Speaker)
			}
			dense = dense[:0]
			for _, v := range values {
				if v {
					dense = append(dense, '1')
				} else {
					dense = append(dense, '0')
				}
			}
			tsvw.WriteString(string(dense))
		}
		if err = tsvw.EndLine(); err != nil {
			return
		}
	}
	return tsvw.Flush()
}
