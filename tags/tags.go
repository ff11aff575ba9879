package tags

import "github.com/yohamta/donburi"

var (
	Launch = donburi.NewTag().SetName("Launch")
	Spark  = donburi.NewTag().SetName("Spark")
)
