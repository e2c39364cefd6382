package protein

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

type writer struct {
	buf *bytes.Buffer
}

func newWriter() *writer {
	return &writer{
		buf: bytes.NewBuffer(make([]byte, 0, 4096)),
	}
}

// Write renders the result to out in the format selected by
// options.Output: "text" (the default), "json" or "svg"
func Write(out io.Writer, result Result, options Options) error {

	w := newWriter()

	switch options.Output {
	case "", "text":
		w.writeText(result, options.Summary)
	case "json":
		if err := w.writeJSON(result); err != nil {
			return err
		}
	case "svg":
		if err := writeChart(w.buf, result); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: wrong value for -F | --output-format parameter: %s", ErrUnsupportedOutput, options.Output)
	}
	return w.flush(out)
}

// text output looks like
//
//	seq_1	0.09
//	seq_2	0.12
func (w *writer) writeText(result Result, summary bool) {

	for i, v := range result.Values {
		w.writeID(i)
		w.buf.WriteByte('\t')
		w.buf.WriteString(v.String())
		w.newLine()
	}

	if !summary {
		return
	}
	if values, ok := numeric(result.Values); ok && len(values) > 0 {
		w.writeSummary(Summarize(values))
	}
}

func (w *writer) writeID(index int) {
	w.buf.WriteString("seq_")
	w.buf.WriteString(strconv.Itoa(index + 1))
}

func (w *writer) writeSummary(s Summary) {
	fmt.Fprintf(w.buf, "# n=%d mean=%.2f sd=%.2f min=%.2f max=%.2f", s.Count, s.Mean, s.StdDev, s.Min, s.Max)
	w.newLine()
}

func (w *writer) writeJSON(result Result) error {
	enc := json.NewEncoder(w.buf)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (w *writer) newLine() {
	w.buf.WriteByte('\n')
}

func (w *writer) flush(out io.Writer) error {

	_, err := out.Write(w.buf.Bytes())
	if err != nil {
		return fmt.Errorf("fail to write to output: %v", err)
	}
	w.buf.Reset()
	return nil
}
