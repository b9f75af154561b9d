package catalog

import "sort"

// Topic/subtopic reference table used to classify free-form tag slugs
// into a display hierarchy. Data, not logic: amend here when the tag
// vocabulary grows.
var topicSubtopics = map[string][]string{
	"algorithms": {
		"asymptotic-notation", "complexity-analysis", "divide-and-conquer",
		"dynamic-programming", "graph-algorithms", "greedy-algorithms",
		"hashing", "recurrence-relations", "searching", "sorting",
	},
	"compiler-design": {
		"code-optimization", "intermediate-code", "lexical-analysis",
		"parsing", "runtime-environment", "syntax-directed-translation",
	},
	"computer-networks": {
		"application-layer-protocols", "congestion-control", "crc-polynomial",
		"ip-addressing", "lan-technologies", "network-layering", "routing",
		"sliding-window", "sockets", "subnetting", "tcp", "udp",
	},
	"co-and-architecture": {
		"addressing-modes", "cache-memory", "data-path", "dma",
		"instruction-format", "interrupts", "io-handling", "machine-instruction",
		"memory-interfacing", "pipelining", "speedup",
	},
	"databases": {
		"b-tree", "candidate-key", "concurrency-control", "database-normalization",
		"er-diagram", "file-organization", "indexing", "joins",
		"referential-integrity", "relational-algebra", "relational-calculus",
		"sql", "transaction-and-concurrency",
	},
	"digital-logic": {
		"adder", "boolean-algebra", "canonical-normal-form", "circuit-output",
		"flip-flop", "k-map", "multiplexer", "number-representation",
		"ram", "sequential-circuit",
	},
	"discrete-mathematics": {
		"combinatory", "first-order-logic", "functions", "generating-functions",
		"graph-coloring", "graph-connectivity", "graph-theory", "group-theory",
		"lattice", "mathematical-logic", "partial-order", "propositional-logic",
		"relations", "set-theory",
	},
	"engineering-mathematics": {
		"calculus", "determinant", "eigen-value", "limits", "linear-algebra",
		"matrix", "maxima-minima", "probability", "random-variable", "statistics",
	},
	"general-aptitude": {
		"analytical-aptitude", "geometry", "logical-reasoning", "numerical-ability",
		"quantitative-aptitude", "spatial-aptitude", "verbal-aptitude",
		"work-time",
	},
	"operating-system": {
		"context-switch", "deadlock-prevention-avoidance-detection", "disk-scheduling",
		"file-system", "fork-system-call", "inter-process-communication",
		"memory-management", "page-replacement", "process-scheduling",
		"process-synchronization", "semaphore", "threads", "virtual-memory",
	},
	"programming-and-ds": {
		"array", "binary-heap", "binary-search-tree", "binary-tree",
		"linked-list", "pointers", "programming-in-c", "queue", "recursion",
		"stack", "tree-traversal",
	},
	"theory-of-computation": {
		"closure-property", "context-free-language", "decidability",
		"finite-automata", "identify-class-language", "minimal-state-automata",
		"pumping-lemma", "pushdown-automata", "regular-expression",
		"regular-language", "turing-machine",
	},
}

// Topics lists the known topics in sorted order.
func Topics() []string {
	out := make([]string, 0, len(topicSubtopics))
	for topic := range topicSubtopics {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}

// Subtopics returns the subtopic slugs for a topic, or nil for an
// unknown topic.
func Subtopics(topic string) []string {
	subs := topicSubtopics[topic]
	if subs == nil {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// TopicMatches reports whether any tag names the topic itself or one of
// its subtopics.
func TopicMatches(topic string, tags []string) bool {
	subs, known := topicSubtopics[topic]
	if !known {
		return false
	}
	for _, tag := range tags {
		if tag == topic {
			return true
		}
		for _, sub := range subs {
			if tag == sub {
				return true
			}
		}
	}
	return false
}
