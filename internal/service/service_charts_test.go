package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JahangirOsman/hdp-webapp/internal/dataset"
	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartSampleCSV = `age,sex,cp,trestbps,chol,fbs,restecg,thalach,exang,oldpeak,slope,ca,thal,target
63,1,3,145,233,1,0,150,0,2.3,0,0,1,1
37,1,2,130,250,0,1,187,0,3.5,0,0,2,1
41,0,1,130,204,0,0,172,0,1.4,2,0,2,1
56,1,1,120,236,0,1,178,0,0.8,2,0,2,1
57,0,0,120,354,0,1,163,1,0.6,2,0,2,1
63,0,0,150,407,0,0,154,0,4.0,1,3,3,0
`

func chartTestService(t *testing.T) ChartService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hdp_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(chartSampleCSV), 0o600))

	data, err := dataset.Load(path, logger.Nop())
	require.NoError(t, err)

	return NewChartService(data, logger.Nop())
}

func TestBuildCharts_FourFragments(t *testing.T) {
	svc := chartTestService(t)

	fragments := svc.BuildCharts()
	require.Len(t, fragments, 4)

	wantTitles := []string{
		"Cholesterol Levels by Age",
		"Chest Pain Type Distribution",
		"Distribution of Max Heart Rate",
		"Cholesterol Levels by Sex",
	}
	for i, fragment := range fragments {
		assert.Equal(t, wantTitles[i], fragment.Title)
		assert.NotEmpty(t, fragment.Element, "fragment %d has no element", i)
		assert.NotEmpty(t, fragment.Script, "fragment %d has no script", i)
	}
}

func TestBuildCharts_Idempotent(t *testing.T) {
	svc := chartTestService(t)

	first := svc.BuildCharts()
	second := svc.BuildCharts()

	// fixed chart IDs make repeated renders byte-identical
	require.Equal(t, first, second)
}
