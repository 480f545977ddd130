package utils

import (
	"hash/fnv"
	"math"
	"sort"
	"sync"
)

type IndexShard struct {
	sync.RWMutex
	data map[string][]int
	tf   map[string]map[int]float32
}

// Index is an inverted index over card text, sharded by term.
type Index struct {
	shards   []*IndexShard
	count    int
	analyzer *Analyzer

	mu    sync.RWMutex
	cards map[int]Card
}

type SearchResult struct {
	ID    int
	Score float32
	Card  Card
}

func NewIndex(shardCount int, a *Analyzer) *Index {
	if shardCount < 1 {
		shardCount = 1
	}
	shards := make([]*IndexShard, shardCount)
	for i := range shards {
		shards[i] = &IndexShard{
			data: make(map[string][]int),
			tf:   make(map[string]map[int]float32),
		}
	}
	return &Index{shards: shards, count: shardCount, analyzer: a, cards: make(map[int]Card)}
}

func (idx *Index) getShard(term string) *IndexShard {
	h := fnv.New32a()
	h.Write([]byte(term))
	return idx.shards[h.Sum32()%uint32(idx.count)]
}

// Len is the number of indexed cards.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.cards)
}

// Add indexes cards by ID. Re-adding an ID is not supported.
func (idx *Index) Add(cards []Card) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, 8)

	for _, card := range cards {
		wg.Add(1)
		sem <- struct{}{}

		go func(c Card) {
			defer wg.Done()
			defer func() { <-sem }()

			idx.mu.Lock()
			idx.cards[c.ID] = c
			idx.mu.Unlock()

			tokens := idx.analyzer.Analyze(c.Text())
			tf := make(map[string]float32)

			for _, t := range tokens {
				tf[t] += 1.0 / float32(len(tokens))
			}

			for term, freq := range tf {
				shard := idx.getShard(term)
				shard.Lock()
				shard.data[term] = append(shard.data[term], c.ID)
				if shard.tf[term] == nil {
					shard.tf[term] = make(map[int]float32)
				}
				shard.tf[term][c.ID] = freq
				shard.Unlock()
			}
		}(card)
	}
	wg.Wait()
}

// Search ranks cards sharing analyzed terms with query by tf-idf and returns
// at most maxResults of them, best first.
func (idx *Index) Search(query string, maxResults int) []SearchResult {
	terms := idx.analyzer.Analyze(query)
	total := idx.Len()
	results := make(chan SearchResult, 100)
	var wg sync.WaitGroup

	for _, term := range terms {
		wg.Add(1)
		go func(t string) {
			defer wg.Done()
			shard := idx.getShard(t)
			shard.RLock()
			defer shard.RUnlock()

			if ids, exists := shard.data[t]; exists {
				idf := math.Log(float64(total+1) / float64(len(ids)))
				for _, id := range ids {
					results <- SearchResult{
						ID:    id,
						Score: float32(idf) * shard.tf[t][id],
					}
				}
			}
		}(term)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	scores := make(map[int]float32)
	for res := range results {
		scores[res.ID] += res.Score
	}

	idx.mu.RLock()
	ranked := make([]SearchResult, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, SearchResult{
			ID:    id,
			Score: score,
			Card:  idx.cards[id],
		})
	}
	idx.mu.RUnlock()

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > maxResults {
		return ranked[:maxResults]
	}
	return ranked
}
