package demand

import (
	"math"
	"math/rand"
	"sort"
)

// forestConfig mirrors the knobs of the original classifier; the defaults in
// model.go are the only configuration used in practice.
type forestConfig struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Seed     int64
}

// forest is a bagged ensemble of gini CART trees predicting the probability
// of a slot being booked.
type forest struct {
	trees []*treeNode
}

type treeNode struct {
	isLeaf    bool
	prob      float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// trainForest fits the ensemble. Each tree is grown on a bootstrap sample
// with sqrt-of-features subsampling at every split. Deterministic for a
// fixed seed.
func trainForest(X [][]float64, y []int, cfg forestConfig) *forest {
	f := &forest{trees: make([]*treeNode, cfg.Trees)}
	n := len(X)
	for t := 0; t < cfg.Trees; t++ {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(t)))
		indices := make([]int, n)
		for i := range indices {
			indices[i] = rng.Intn(n)
		}
		f.trees[t] = growTree(X, y, indices, 0, cfg, rng)
	}
	return f
}

// predictProba returns the mean booked-probability across trees.
func (f *forest) predictProba(row []float64) float64 {
	sum := 0.0
	for _, tree := range f.trees {
		sum += tree.predict(row)
	}
	return sum / float64(len(f.trees))
}

func (node *treeNode) predict(row []float64) float64 {
	for !node.isLeaf {
		if row[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.prob
}

func growTree(X [][]float64, y []int, indices []int, depth int, cfg forestConfig, rng *rand.Rand) *treeNode {
	positives := 0
	for _, i := range indices {
		positives += y[i]
	}
	prob := float64(positives) / float64(len(indices))

	if depth >= cfg.MaxDepth || len(indices) < 2*cfg.MinLeaf || positives == 0 || positives == len(indices) {
		return &treeNode{isLeaf: true, prob: prob}
	}

	feature, threshold, ok := bestSplit(X, y, indices, cfg, rng)
	if !ok {
		return &treeNode{isLeaf: true, prob: prob}
	}

	var left, right []int
	for _, i := range indices {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < cfg.MinLeaf || len(right) < cfg.MinLeaf {
		return &treeNode{isLeaf: true, prob: prob}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(X, y, left, depth+1, cfg, rng),
		right:     growTree(X, y, right, depth+1, cfg, rng),
	}
}

// bestSplit scans a random sqrt-sized feature subset for the threshold with
// the lowest weighted gini impurity.
func bestSplit(X [][]float64, y []int, indices []int, cfg forestConfig, rng *rand.Rand) (int, float64, bool) {
	numFeats := len(X[0])
	subset := rng.Perm(numFeats)[:featureSubsetSize(numFeats)]

	bestGini := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0

	values := make([]float64, 0, len(indices))
	for _, feature := range subset {
		values = values[:0]
		for _, i := range indices {
			values = append(values, X[i][feature])
		}
		sort.Float64s(values)

		for v := 1; v < len(values); v++ {
			if values[v] == values[v-1] {
				continue
			}
			threshold := (values[v] + values[v-1]) / 2
			gini := splitGini(X, y, indices, feature, threshold)
			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}
	return bestFeature, bestThreshold, bestFeature >= 0
}

func splitGini(X [][]float64, y []int, indices []int, feature int, threshold float64) float64 {
	var nLeft, posLeft, nRight, posRight int
	for _, i := range indices {
		if X[i][feature] <= threshold {
			nLeft++
			posLeft += y[i]
		} else {
			nRight++
			posRight += y[i]
		}
	}
	total := float64(nLeft + nRight)
	return float64(nLeft)/total*gini(posLeft, nLeft) + float64(nRight)/total*gini(posRight, nRight)
}

func gini(positives, n int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(positives) / float64(n)
	return 2 * p * (1 - p)
}

func featureSubsetSize(numFeats int) int {
	size := int(math.Ceil(math.Sqrt(float64(numFeats))))
	if size < 1 {
		size = 1
	}
	if size > numFeats {
		size = numFeats
	}
	return size
}
