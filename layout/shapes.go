package layout

// circleKappa 是用四段三次贝塞尔曲线逼近圆时控制点相对半径的比例。
const circleKappa = 0.552284749831

// circlePaddingRatio 为圆与格子边缘之间的留白（占边长的比例）。
const circlePaddingRatio = 0.05

// CircleCurve 返回圆心 (cx, cy)、半径 r 的闭合曲线，从最左点开始顺时针经过上、右、下四个轴点。
func CircleCurve(cx, cy, r float64) Curve {
	k := circleKappa * r
	return Curve{
		Start: Point{X: cx - r, Y: cy},
		Segments: []Cubic{
			{C1: Point{X: cx - r, Y: cy + k}, C2: Point{X: cx - k, Y: cy + r}, End: Point{X: cx, Y: cy + r}},
			{C1: Point{X: cx + k, Y: cy + r}, C2: Point{X: cx + r, Y: cy + k}, End: Point{X: cx + r, Y: cy}},
			{C1: Point{X: cx + r, Y: cy - k}, C2: Point{X: cx + k, Y: cy - r}, End: Point{X: cx, Y: cy - r}},
			{C1: Point{X: cx - k, Y: cy - r}, C2: Point{X: cx - r, Y: cy - k}, End: Point{X: cx - r, Y: cy}},
		},
	}
}

// InscribedCircle 返回内切于正方形 rect 的装饰圆，四周留出 5% 的边距。
func InscribedCircle(rect Rect) Curve {
	padding := rect.Width * circlePaddingRatio
	r := rect.Width/2 - padding
	return CircleCurve(rect.X+rect.Width/2, rect.Y+rect.Height/2, r)
}
