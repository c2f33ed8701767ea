package notebook

import "github.com/tidwall/gjson"

// Parse decodes a notebook from its JSON encoding.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrNotObject
	}

	doc := &Document{Metadata: decodeMetadata(root.Get("metadata"))}
	each(root.Get("cells"), func(v gjson.Result) {
		doc.Cells = append(doc.Cells, decodeCell(v))
	})
	return doc, nil
}

func decodeMetadata(m gjson.Result) Metadata {
	lang := m.Get("language_info.name").String()
	if lang == "" {
		lang = m.Get("kernelspec.language").String()
	}
	return Metadata{
		Language: lang,
		Kernel:   m.Get("kernelspec.name").String(),
		Title:    m.Get("title").String(),
	}
}

func decodeCell(v gjson.Result) Cell {
	cell := Cell{
		Type:   CellType(v.Get("cell_type").String()),
		Source: text(v.Get("source")),
	}
	if cell.Type != CellCode {
		return cell
	}
	each(v.Get("outputs"), func(o gjson.Result) {
		cell.Outputs = append(cell.Outputs, decodeOutput(o))
	})
	return cell
}

func decodeOutput(o gjson.Result) Output {
	out := Output{Type: OutputType(o.Get("output_type").String())}
	switch out.Type {
	case OutputStream:
		out.Name = o.Get("name").String()
		out.Text = text(o.Get("text"))
	case OutputExecuteResult, OutputDisplayData:
		out.Data = decodeBundle(o.Get("data"))
	case OutputError:
		out.EName = o.Get("ename").String()
		out.EValue = o.Get("evalue").String()
		out.Traceback = lines(o.Get("traceback"))
	}
	return out
}

// decodeBundle iterates the data object directly because MIME keys contain
// dots, which gjson paths would treat as separators.
func decodeBundle(data gjson.Result) Bundle {
	bundle := Bundle{}
	if !data.IsObject() {
		return bundle
	}
	data.ForEach(func(k, v gjson.Result) bool {
		bundle[k.String()] = Payload{value: v}
		return true
	})
	return bundle
}

// text flattens a string or an array of strings. Anything else is empty;
// non-string array elements are skipped.
func text(v gjson.Result) string {
	switch {
	case v.Type == gjson.String:
		return v.Str
	case v.IsArray():
		var s []byte
		each(v, func(e gjson.Result) {
			if e.Type == gjson.String {
				s = append(s, e.Str...)
			}
		})
		return string(s)
	default:
		return ""
	}
}

// lines returns an array of strings as a slice. A single string is one line.
func lines(v gjson.Result) []string {
	if v.Type == gjson.String {
		return []string{v.Str}
	}
	var out []string
	each(v, func(e gjson.Result) {
		if e.Type == gjson.String {
			out = append(out, e.Str)
		}
	})
	return out
}

// each calls fn for every element of an array. Non-arrays yield nothing.
func each(v gjson.Result, fn func(gjson.Result)) {
	if !v.IsArray() {
		return
	}
	v.ForEach(func(_, e gjson.Result) bool {
		fn(e)
		return true
	})
}
