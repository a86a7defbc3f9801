package predict

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var errFactorize = errors.New("predict: SVD factorization failed")

// linearModel is an ordinary least squares fit y = intercept + coef·x.
type linearModel struct {
	coef      []float64
	intercept float64
}

// fitLinear fits rows (one predictor vector per observation) against y.
// Predictors are centred before solving, so the intercept is the mean response
// minus the contribution of the predictor means. The system is solved through
// the pseudo-inverse, which yields the minimum-norm solution when columns are
// collinear or constant.
func fitLinear(rows [][]float64, y []float64) (linearModel, error) {
	n := len(rows)
	if n == 0 || n != len(y) {
		return linearModel{}, errors.New("predict: no observations")
	}
	p := len(rows[0])

	means := make([]float64, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		for i := range rows {
			col[i] = rows[i][j]
		}
		means[j] = stat.Mean(col, nil)
	}
	yMean := stat.Mean(y, nil)

	centred := mat.NewDense(n, p, nil)
	for i, row := range rows {
		for j, x := range row {
			centred.Set(i, j, x-means[j])
		}
	}
	yc := make([]float64, n)
	for i, v := range y {
		yc[i] = v - yMean
	}

	var svd mat.SVD
	if ok := svd.Factorize(centred, mat.SVDThin); !ok {
		return linearModel{}, errFactorize
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	coef := make([]float64, p)
	if len(values) > 0 {
		tol := float64(max(n, p)) * values[0] * 1e-15
		uCol := make([]float64, n)
		vCol := make([]float64, p)
		for k, s := range values {
			if s <= tol {
				continue
			}
			mat.Col(uCol, k, &u)
			mat.Col(vCol, k, &v)
			floats.AddScaled(coef, floats.Dot(uCol, yc)/s, vCol)
		}
	}

	intercept := yMean - floats.Dot(coef, means)
	if math.IsNaN(intercept) {
		return linearModel{}, errFactorize
	}
	return linearModel{coef: coef, intercept: intercept}, nil
}

func (m linearModel) predict(x []float64) float64 {
	return m.intercept + floats.Dot(m.coef, x)
}
