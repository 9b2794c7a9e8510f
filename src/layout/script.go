package layout

import (
	"io"
	"text/template"
)

//what the linker feeds into each output section. The KEEP on .text.boot
//matters: nothing references the trampoline by symbol, the hardware just
//lands on it, and without KEEP a garbage-collecting link throws it away.
var scriptInputs = map[string][]string{
	"text":   {"KEEP(*(.text.boot))", "*(.text .text.*)"},
	"rodata": {"*(.rodata .rodata.*)"},
	"data":   {"*(.data .data.*)"},
	"bss":    {"*(.bss .bss.*)", "*(COMMON)"},
}

const scriptTemplateText = `/* {{.Comment}} */

ENTRY(_start)

SECTIONS
{
    . = {{printf "%#x" .LoadAddress}};
{{range .Regions}}
    __{{.Name}}_start = .;
    .{{.Name}} :
    {
{{- range .Inputs}}
        {{.}}
{{- end}}
    }
    . = ALIGN({{$.PageSize}});
    __{{.Name}}_end = .;
{{end}}
    __end = .;
}
`

var scriptTemplate = template.Must(template.New("ldscript").Parse(scriptTemplateText))

type scriptRegion struct {
	Name   string
	Inputs []string
}

// Script writes the GNU ld script that makes the linker uphold this
// layout: fixed load address, the four sections in canonical order, each
// boundary pushed to a page, the boundary symbols published, and the
// trampoline's section force-retained.
func (l Layout) Script(w io.Writer, comment string) error {
	data := struct {
		Comment     string
		LoadAddress uintptr
		PageSize    uintptr
		Regions     []scriptRegion
	}{
		Comment:     comment,
		LoadAddress: l.LoadAddress,
		PageSize:    PageSize,
	}
	for _, r := range l.Regions {
		data.Regions = append(data.Regions, scriptRegion{Name: r.Name, Inputs: scriptInputs[r.Name]})
	}
	return scriptTemplate.Execute(w, data)
}
