package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/undeconstructed/sugoroku/game"
)

// TeX writes the board as a LaTeX document, one titled box per area,
// ready to print and cut out.
func TeX(w io.Writer, b *game.Board, m game.Messages) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, `\documentclass[11pt,dvipdfmx]{jsarticle}`)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `\usepackage{tcolorbox}`)
	fmt.Fprintln(bw, `\newtcolorbox{areabox}[2][]{colbacktitle=black,coltitle=white,title={#2}}`)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `\begin{document}`)
	fmt.Fprintf(bw, "\\title{%s}\n", b.Title)
	fmt.Fprintln(bw, `\author{}`)
	fmt.Fprintln(bw, `\date{}`)
	fmt.Fprintln(bw, `\maketitle`)
	fmt.Fprintln(bw)

	for i, a := range b.Areas {
		fmt.Fprintf(bw, "\\begin{areabox}{%d}\n", i)
		for _, line := range strings.Split(a.Describe(m), "\n") {
			fmt.Fprintf(bw, "%s\\\\\n", line)
		}
		fmt.Fprintln(bw, `\end{areabox}`)
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, `\end{document}`)

	return bw.Flush()
}
