package namespace

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"outreach_syncer/internal/domain"
)

// storage target identifiers end up in SQL, so the registry only admits a
// conservative shape.
var targetPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// Namespace is one registered tenant/segment.
type Namespace struct {
	Name          string
	StorageTarget string
	Keywords      []string
	Active        bool
	CreatedAt     time.Time
}

// Target pairs a namespace with its validated storage target.
type Target struct {
	Namespace     string
	StorageTarget string
}

// Resolver maps namespace specs and campaign names to storage targets. The
// registry is built once at startup and read-only afterwards.
type Resolver struct {
	ordered     []Namespace // creation order
	byName      map[string]Namespace
	defaultName string
	logger      *slog.Logger
}

// New builds a resolver from the registered namespaces. defaultName is used
// when campaign matching finds no keyword hits; it must name a registered
// namespace.
func New(namespaces []Namespace, defaultName string, logger *slog.Logger) (*Resolver, error) {
	if len(namespaces) == 0 {
		return nil, fmt.Errorf("no namespaces registered")
	}

	ordered := make([]Namespace, len(namespaces))
	copy(ordered, namespaces)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	byName := make(map[string]Namespace, len(ordered))
	for _, ns := range ordered {
		if ns.Name == "" {
			return nil, fmt.Errorf("namespace with empty name")
		}
		if !targetPattern.MatchString(ns.StorageTarget) {
			return nil, fmt.Errorf("namespace %q: invalid storage target %q", ns.Name, ns.StorageTarget)
		}
		if _, dup := byName[ns.Name]; dup {
			return nil, fmt.Errorf("duplicate namespace %q", ns.Name)
		}
		byName[ns.Name] = ns
	}

	if _, ok := byName[defaultName]; !ok {
		return nil, fmt.Errorf("default namespace %q is not registered", defaultName)
	}

	return &Resolver{
		ordered:     ordered,
		byName:      byName,
		defaultName: defaultName,
		logger:      logger.With("component", "namespace"),
	}, nil
}

// ResolveTargets expands requested namespace names into storage targets. The literal
// "all" expands to every active namespace and errors when none exist. Unknown
// or inactive names fail resolution.
func (r *Resolver) ResolveTargets(names []string) ([]Target, error) {
	if len(names) == 1 && names[0] == domain.NamespaceAll {
		var targets []Target
		for _, ns := range r.ordered {
			if ns.Active {
				targets = append(targets, Target{Namespace: ns.Name, StorageTarget: ns.StorageTarget})
			}
		}
		if len(targets) == 0 {
			return nil, &domain.ValidationError{Field: "namespaces", Reason: "no active namespaces"}
		}
		return targets, nil
	}

	if len(names) == 0 {
		return nil, &domain.ValidationError{Field: "namespaces", Reason: "empty"}
	}

	targets := make([]Target, 0, len(names))
	for _, name := range names {
		ns, ok := r.byName[name]
		if !ok {
			return nil, &domain.ValidationError{Field: "namespaces", Reason: fmt.Sprintf("unknown namespace %q", name)}
		}
		if !ns.Active {
			return nil, &domain.ValidationError{Field: "namespaces", Reason: fmt.Sprintf("namespace %q is inactive", name)}
		}
		targets = append(targets, Target{Namespace: ns.Name, StorageTarget: ns.StorageTarget})
	}
	return targets, nil
}

// MatchCampaign picks the namespace whose keyword list best matches the
// campaign name: case-insensitive substring hits, most matches wins, ties
// broken by earliest-created namespace. Inactive namespaces never match; no
// hit falls back to the default.
func (r *Resolver) MatchCampaign(campaignName string) string {
	name := strings.ToLower(campaignName)

	best := ""
	bestScore := 0
	for _, ns := range r.ordered {
		if !ns.Active {
			continue
		}
		score := 0
		for _, kw := range ns.Keywords {
			if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			best = ns.Name
			bestScore = score
		}
	}

	if best == "" {
		r.logger.Debug("campaign matched no namespace keywords, using default",
			"campaign", campaignName,
			"default", r.defaultName,
		)
		return r.defaultName
	}
	return best
}
