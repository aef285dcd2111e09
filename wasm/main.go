//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("CtxgrepNewSearcher", js.FuncOf(newSearcher))
	js.Global().Set("CtxgrepSearch", js.FuncOf(search))
	js.Global().Set("CtxgrepSearchBatch", js.FuncOf(searchBatch))
	js.Global().Set("CtxgrepCloseSearcher", js.FuncOf(closeSearcher))

	// Keep WASM running
	<-make(chan struct{})
}
