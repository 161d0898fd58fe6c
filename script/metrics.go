// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/BOXFoundation/paircommit/metrics"
)

var (
	metricsEvalCounter     = metrics.NewCounter("script.eval")
	metricsEvalFailCounter = metrics.NewCounter("script.eval.fail")
	metricsEvalTimer       = metrics.NewTimer("script.eval.time")
	metricsPairCommitMeter = metrics.NewMeter("script.op.paircommit")
	metricsCacheHitCounter = metrics.NewCounter("script.cache.hit")
	metricsCacheSizeGauge  = metrics.NewGauge("script.cache.size")
)
