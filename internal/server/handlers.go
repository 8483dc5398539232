package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kegliz/aigrw/aig"
	"github.com/kegliz/aigrw/internal/rwlog"
	"github.com/kegliz/aigrw/rewrite"
)

type handlers struct {
	logger *rwlog.Logger
}

// gateSpec describes one AND gate's fanins by index into the combined
// node list: 0 is the constant, 1..NumPIs are primary inputs, and
// NumPIs+1.. are this request's gates in order.
type gateSpec struct {
	Fanin0     int  `json:"fanin0"`
	Fanin0Comp bool `json:"fanin0_comp"`
	Fanin1     int  `json:"fanin1"`
	Fanin1Comp bool `json:"fanin1_comp"`
}

type outputSpec struct {
	Node int  `json:"node"`
	Comp bool `json:"comp"`
}

// rewriteRequest is the wire format for POST /api/rewrite.
type rewriteRequest struct {
	NumPIs                      int          `json:"num_pis"`
	Gates                       []gateSpec   `json:"gates"`
	Outputs                     []outputSpec `json:"outputs"`
	RelaxAssociativityGuard     bool         `json:"relax_associativity_guard"`
	DisableThreeLevelDepthGuard bool         `json:"disable_three_level_depth_guard"`
}

type rewriteResponse struct {
	RunID       string         `json:"run_id"`
	Sweeps      int            `json:"sweeps"`
	Rewrites    map[string]int `json:"rewrites"`
	DepthBefore uint32         `json:"depth_before"`
	DepthAfter  uint32         `json:"depth_after"`
}

func (h *handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Rewrite builds an AIG from the request body, runs the algebraic
// rewrite engine to fixpoint, and reports the resulting depth.
func (h *handlers) Rewrite(c *gin.Context) {
	l := loggerFromContext(c)

	var req rewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding rewrite request failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	a, err := buildAIG(req)
	if err != nil {
		l.Error().Err(err).Msg("building AIG from request failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := rewrite.DefaultOptions()
	opts.RelaxAssociativityGuard = req.RelaxAssociativityGuard
	opts.EnableThreeLevelDepthGuard = !req.DisableThreeLevelDepthGuard

	stats, err := rewrite.Run(a, opts, l)
	if err != nil {
		l.Error().Err(err).Msg("rewrite engine reported a precondition failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rewrite engine failed"})
		return
	}
	c.JSON(http.StatusOK, rewriteResponse{
		RunID:       stats.RunID,
		Sweeps:      stats.Sweeps,
		Rewrites:    stats.Rewrites,
		DepthBefore: stats.DepthBefore,
		DepthAfter:  stats.DepthAfter,
	})
}

// buildAIG materializes req's node list into an *aig.AIG, recovering
// from the index-out-of-range panic an out-of-range or negative node
// index causes when it is looked up in the signal table, and reporting
// it as a normal error instead, since an HTTP handler must never let a
// client-supplied index crash the process.
func buildAIG(req rewriteRequest) (result *aig.AIG, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("invalid request: %v", r)
			}
			result = nil
		}
	}()

	a := aig.New()
	signals := make([]aig.Signal, 1+req.NumPIs+len(req.Gates))
	signals[0] = aig.ConstFalse

	for i := 0; i < req.NumPIs; i++ {
		signals[1+i] = a.CreatePI()
	}
	for i, g := range req.Gates {
		f0 := signals[g.Fanin0].WithComplement(g.Fanin0Comp)
		f1 := signals[g.Fanin1].WithComplement(g.Fanin1Comp)
		signals[1+req.NumPIs+i] = a.CreateAnd(f0, f1)
	}
	for _, out := range req.Outputs {
		a.CreatePO(signals[out.Node].WithComplement(out.Comp))
	}
	return a, nil
}
