package schemaval

import "sort"

// maxWalkDepth bounds the recursive reference walk. JSON values decoded from
// text cannot be cyclic, so the limit is defensive hardening only.
const maxWalkDepth = 64

// GraphNode is one @graph entry with its resolved reference edges.
type GraphNode struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	References   []string `json:"references"`
	ReferencedBy []string `json:"referencedBy"`
}

// GraphAnalysis describes the reference structure of a JSON-LD @graph array.
//
// Circular references cover direct mutual pairs only (A references B and B
// references A); longer cycles are not detected. That narrower behavior is a
// documented limitation, pinned by tests.
type GraphAnalysis struct {
	Nodes              []GraphNode `json:"nodes"`
	RootNodes          []string    `json:"rootNodes"`
	OrphanNodes        []string    `json:"orphanNodes"`
	CircularReferences []string    `json:"circularReferences"`
}

// AnalyzeGraph builds the reference graph over a @graph array. Pass one
// collects @id values; pass two walks each node's value tree for references
// to other known ids. Nodes sharing an @id collapse into one.
func AnalyzeGraph(graph []map[string]any) GraphAnalysis {
	known := make(map[string]int) // id -> index into order
	var order []string
	types := make(map[string]string)

	for _, node := range graph {
		id, ok := node["@id"].(string)
		if !ok || id == "" {
			continue
		}
		if _, seen := known[id]; !seen {
			known[id] = len(order)
			order = append(order, id)
		}
		if t := nodeType(node); t != "" {
			types[id] = t
		}
	}

	outgoing := make(map[string][]string)
	outgoingSet := make(map[string]map[string]struct{})
	for _, id := range order {
		outgoingSet[id] = make(map[string]struct{})
	}

	for _, node := range graph {
		src, ok := node["@id"].(string)
		if !ok || src == "" {
			continue
		}
		collectRefs(node, src, known, outgoingSet[src], outgoing, 0)
	}

	incoming := make(map[string][]string)
	for _, src := range order {
		for _, dst := range outgoing[src] {
			incoming[dst] = append(incoming[dst], src)
		}
	}

	analysis := GraphAnalysis{
		RootNodes:          []string{},
		OrphanNodes:        []string{},
		CircularReferences: []string{},
	}
	for _, id := range order {
		analysis.Nodes = append(analysis.Nodes, GraphNode{
			ID:           id,
			Type:         types[id],
			References:   nonNil(outgoing[id]),
			ReferencedBy: nonNil(incoming[id]),
		})
		if len(incoming[id]) == 0 {
			analysis.RootNodes = append(analysis.RootNodes, id)
			if len(outgoing[id]) == 0 {
				analysis.OrphanNodes = append(analysis.OrphanNodes, id)
			}
		}
	}

	seenPairs := make(map[string]struct{})
	for _, a := range order {
		for _, b := range outgoing[a] {
			if _, mutual := outgoingSet[b][a]; !mutual {
				continue
			}
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			pair := lo + " <-> " + hi
			if _, dup := seenPairs[pair]; dup {
				continue
			}
			seenPairs[pair] = struct{}{}
			analysis.CircularReferences = append(analysis.CircularReferences, pair)
		}
	}
	sort.Strings(analysis.CircularReferences)

	return analysis
}

// collectRefs depth-first walks a JSON value tree, recording any @id that
// names a known node other than the source.
func collectRefs(val any, src string, known map[string]int, set map[string]struct{}, out map[string][]string, depth int) {
	if depth > maxWalkDepth {
		return
	}
	switch v := val.(type) {
	case map[string]any:
		if id, ok := v["@id"].(string); ok && id != src {
			if _, isKnown := known[id]; isKnown {
				if _, dup := set[id]; !dup {
					set[id] = struct{}{}
					out[src] = append(out[src], id)
				}
			}
		}
		// Walk keys in sorted order so reference lists are deterministic.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			collectRefs(v[k], src, known, set, out, depth+1)
		}
	case []any:
		for _, child := range v {
			collectRefs(child, src, known, set, out, depth+1)
		}
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
