package layout

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/wadvanced/aurora-uix/internal/resource"
)

// Trees holds the normalized layout per kind for one resource.
type Trees map[Tag]*Node

// MergeAndNormalize is the end-to-end entry point: it merges registered
// fragments per (resource, kind), fills missing variants, synthesizes
// defaults for kinds still absent, and normalizes section/tab state. The
// result always carries all three kinds per resource.
func MergeAndNormalize(reg *Registry, resources resource.Map, set Settings) (map[string]Trees, error) {
	for _, k := range reg.Keys() {
		if _, ok := resources[k.Resource]; !ok {
			return nil, fmt.Errorf("layout declared for unknown resource %q", k.Resource)
		}
	}

	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]Trees, len(resources))
	for _, name := range names {
		res := resources[name]

		trees := Trees{}
		for _, kind := range kindOrder {
			if frags := reg.Fragments(name, kind); len(frags) > 0 {
				trees[kind] = Merge(frags)
			}
		}
		for _, rule := range set.FillRules {
			trees = FillMissing(trees, rule.Source, rule.Target)
		}
		for _, kind := range kindOrder {
			if !isEmptyTree(trees[kind]) {
				continue
			}
			synth := Synthesize(res, set, kind)
			if declared := trees[kind]; declared != nil {
				// A declared-but-empty container keeps its options.
				synth.Options = synth.Options.Merge(declared.Options)
			}
			trees[kind] = synth
		}

		normalized := Trees{}
		for _, kind := range kindOrder {
			t := Normalize(trees[kind])
			assignUIDs(t, fmt.Sprintf("uix://%s/%s", name, kind))
			normalized[kind] = t
		}
		out[name] = normalized
	}
	return out, nil
}

// Preloads computes the expanded preload plan for every resource over their
// normalized trees.
func Preloads(all map[string]Trees, resources resource.Map) map[string][]Preload {
	direct := make(map[string][]Preload, len(all))
	for name, trees := range all {
		direct[name] = ExtractPreloads(map[Tag]*Node(trees), resources[name])
	}
	return ExpandAssociations(direct)
}

// assignUIDs stamps every node with a deterministic renderer key derived from
// its path, so regenerating the same declarations yields the same ids.
func assignUIDs(n *Node, path string) {
	if n == nil {
		return
	}
	n.Config.UID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(path)).String()
	for i, c := range n.Children {
		assignUIDs(c, fmt.Sprintf("%s/%d", path, i))
	}
}
