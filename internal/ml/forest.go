package ml

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// RandomForest is a bagged ensemble of binary Gini decision trees predicting
// the probability of the positive class. Trees are grown from bootstrap
// samples with sqrt(d) feature subsampling at every split. All randomness
// comes from a single seeded source, so fitting the same data yields the
// same ensemble on every call.
type RandomForest struct {
	NumTrees        int
	MaxDepth        int
	MinSamplesSplit int
	Seed            int64

	trees       []*treeNode
	numFeatures int
}

type treeNode struct {
	// Leaf payload: fraction of positive samples that reached this node.
	probability float64
	leaf        bool

	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// NewRandomForest returns a forest with the given ensemble size and seed.
func NewRandomForest(numTrees int, seed int64) *RandomForest {
	return &RandomForest{
		NumTrees:        numTrees,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		Seed:            seed,
	}
}

// Fit grows the ensemble on the training matrix x and binary labels y.
func (f *RandomForest) Fit(x *mat.Dense, y []int) error {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("forest: empty training matrix (%dx%d)", rows, cols)
	}
	if rows != len(y) {
		return fmt.Errorf("forest: %d samples but %d labels", rows, len(y))
	}
	for _, label := range y {
		if label != 0 && label != 1 {
			return fmt.Errorf("forest: label %d out of {0,1}", label)
		}
	}

	samples := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		samples[i] = mat.Row(nil, i, x)
	}

	rng := rand.New(rand.NewSource(f.Seed))
	featuresPerSplit := int(math.Ceil(math.Sqrt(float64(cols))))

	f.numFeatures = cols
	f.trees = make([]*treeNode, 0, f.NumTrees)
	for t := 0; t < f.NumTrees; t++ {
		indices := make([]int, rows)
		for i := range indices {
			indices[i] = rng.Intn(rows)
		}
		f.trees = append(f.trees, f.grow(samples, y, indices, featuresPerSplit, 0, rng))
	}

	return nil
}

// PredictProba returns the mean positive-class probability across all trees.
func (f *RandomForest) PredictProba(features []float64) (float64, error) {
	if len(f.trees) == 0 {
		return 0, fmt.Errorf("forest: not fitted")
	}
	if len(features) != f.numFeatures {
		return 0, fmt.Errorf("forest: dimension mismatch: got %d features, fitted on %d", len(features), f.numFeatures)
	}

	sum := 0.0
	for _, tree := range f.trees {
		node := tree
		for !node.leaf {
			if features[node.feature] <= node.threshold {
				node = node.left
			} else {
				node = node.right
			}
		}
		sum += node.probability
	}
	return sum / float64(len(f.trees)), nil
}

func (f *RandomForest) grow(samples [][]float64, y []int, indices []int, featuresPerSplit, depth int, rng *rand.Rand) *treeNode {
	positives := 0
	for _, i := range indices {
		positives += y[i]
	}
	probability := float64(positives) / float64(len(indices))

	if depth >= f.MaxDepth || len(indices) < f.MinSamplesSplit || positives == 0 || positives == len(indices) {
		return &treeNode{leaf: true, probability: probability}
	}

	feature, threshold, ok := f.bestSplit(samples, y, indices, featuresPerSplit, rng)
	if !ok {
		return &treeNode{leaf: true, probability: probability}
	}

	var left, right []int
	for _, i := range indices {
		if samples[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, probability: probability}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      f.grow(samples, y, left, featuresPerSplit, depth+1, rng),
		right:     f.grow(samples, y, right, featuresPerSplit, depth+1, rng),
	}
}

// bestSplit scans a random feature subset for the threshold minimizing the
// weighted Gini impurity of the two children.
func (f *RandomForest) bestSplit(samples [][]float64, y []int, indices []int, featuresPerSplit int, rng *rand.Rand) (int, float64, bool) {
	numFeatures := len(samples[0])
	candidates := rng.Perm(numFeatures)[:featuresPerSplit]
	sort.Ints(candidates)

	bestGini := math.Inf(1)
	bestFeature := -1
	bestThreshold := 0.0

	values := make([]float64, 0, len(indices))
	for _, feature := range candidates {
		values = values[:0]
		for _, i := range indices {
			values = append(values, samples[i][feature])
		}
		sort.Float64s(values)

		for k := 1; k < len(values); k++ {
			if values[k] == values[k-1] {
				continue
			}
			threshold := (values[k] + values[k-1]) / 2

			leftTotal, leftPos, rightTotal, rightPos := 0, 0, 0, 0
			for _, i := range indices {
				if samples[i][feature] <= threshold {
					leftTotal++
					leftPos += y[i]
				} else {
					rightTotal++
					rightPos += y[i]
				}
			}

			gini := weightedGini(leftTotal, leftPos, rightTotal, rightPos)
			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func weightedGini(leftTotal, leftPos, rightTotal, rightPos int) float64 {
	total := float64(leftTotal + rightTotal)
	return float64(leftTotal)/total*gini(leftTotal, leftPos) +
		float64(rightTotal)/total*gini(rightTotal, rightPos)
}

func gini(total, positives int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(positives) / float64(total)
	return 2 * p * (1 - p)
}
