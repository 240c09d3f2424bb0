/*
Package parsetree implements labeled, ordered, rooted trees, as used for
linguistic parse trees (constituency trees in treebank notation).

Overview

Trees are built from mutable nodes. Every node carries a label and an ordered
list of children. Inner nodes hold an upward link to their parent; terminal
nodes (the words of a sentence) do not, mirroring treebank representations
where leaves are bare strings. Clients of upward navigation have to be
prepared to receive no result when starting out at a terminal.

Trees may be read from and written to the usual bracketed notation:

   (S (NP (DT the) (NN dog)) (VP barks))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tgrep.tree'.
func tracer() tracing.Trace {
	return tracing.Select("tgrep.tree")
}
