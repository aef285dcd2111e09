//go:build wasm

package main

import (
	"encoding/json"
	"sync"
	"syscall/js"

	"github.com/praetorian-inc/ctxgrep"
	"github.com/praetorian-inc/ctxgrep/pkg/config"
)

var (
	searchers   = make(map[int]*ctxgrep.Searcher)
	searchersMu sync.RWMutex
	nextID      int
)

// group is the JSON form of a match group.
type group struct {
	Anchor int `json:"anchor"`
	Start  int `json:"start"`
	End    int `json:"end"`
}

// searchResult is returned for every searched content item.
type searchResult struct {
	Source  string   `json:"source,omitempty"`
	Entries []string `json:"entries"`
	Groups  []group  `json:"groups"`
}

// batchItem is one input of CtxgrepSearchBatch.
type batchItem struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// newSearcher compiles a pattern.
// JS: CtxgrepNewSearcher(pattern, optionsJSON?) -> {handle} or {error}
// optionsJSON uses the same keys as the YAML config file.
func newSearcher(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "pattern argument required"}
	}

	pattern := args[0].String()
	opts := config.Defaults()
	if len(args) > 1 && args[1].Type() == js.TypeString {
		// JSON is valid YAML, so the config file parser handles it.
		layer, err := config.ParseYAML([]byte(args[1].String()))
		if err != nil {
			return map[string]interface{}{"error": "failed to parse options: " + err.Error()}
		}
		layer.Apply(&opts)
	}

	s, err := ctxgrep.NewSearcherWithOptions(pattern, opts)
	if err != nil {
		return map[string]interface{}{"error": "failed to create searcher: " + err.Error()}
	}

	searchersMu.Lock()
	id := nextID
	nextID++
	searchers[id] = s
	searchersMu.Unlock()

	return map[string]interface{}{"handle": id}
}

func lookup(handle int) (*ctxgrep.Searcher, bool) {
	searchersMu.RLock()
	defer searchersMu.RUnlock()
	s, ok := searchers[handle]
	return s, ok
}

func searchOne(s *ctxgrep.Searcher, src, content string) searchResult {
	entries, groups := s.Search(content)
	res := searchResult{Source: src, Entries: entries, Groups: []group{}}
	if res.Entries == nil {
		res.Entries = []string{}
	}
	for _, g := range groups {
		res.Groups = append(res.Groups, group{Anchor: g.Anchor, Start: g.Start, End: g.End})
	}
	return res
}

// search greps a single content string.
// JS: CtxgrepSearch(handle, content) -> JSON result or {error}
func search(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and content arguments required"}
	}

	s, ok := lookup(args[0].Int())
	if !ok {
		return map[string]interface{}{"error": "invalid searcher handle"}
	}

	jsonBytes, err := json.Marshal(searchOne(s, "", args[1].String()))
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal results: " + err.Error()}
	}
	return string(jsonBytes)
}

// searchBatch greps several inputs in order.
// JS: CtxgrepSearchBatch(handle, itemsJSON) -> JSON results or {error}
func searchBatch(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and itemsJSON arguments required"}
	}

	s, ok := lookup(args[0].Int())
	if !ok {
		return map[string]interface{}{"error": "invalid searcher handle"}
	}

	var items []batchItem
	if err := json.Unmarshal([]byte(args[1].String()), &items); err != nil {
		return map[string]interface{}{"error": "failed to parse items JSON: " + err.Error()}
	}

	results := make([]searchResult, 0, len(items))
	for _, item := range items {
		results = append(results, searchOne(s, item.Source, item.Content))
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal results: " + err.Error()}
	}
	return string(jsonBytes)
}

// closeSearcher releases a searcher handle.
// JS: CtxgrepCloseSearcher(handle)
func closeSearcher(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	searchersMu.Lock()
	_, ok := searchers[handle]
	delete(searchers, handle)
	searchersMu.Unlock()

	if !ok {
		return map[string]interface{}{"error": "invalid searcher handle"}
	}
	return nil
}
