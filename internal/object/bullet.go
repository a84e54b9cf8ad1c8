package object

import "github.com/SparshMishra09/Astroid-Shooter/internal/geom"

// Bullet tuning.
const (
	BulletWidth  = 5.0
	BulletHeight = 15.0
	BulletSpeed  = 10.0 // Units per tick, straight up unless angled

	EnemyBulletSize  = 8.0
	EnemyBulletSpeed = 4.0
)

// Bullet is a shot fired by the player. It dies when it leaves the view;
// leaving through the top edge counts as a miss against the combo streak.
type Bullet struct {
	geom.Rect
	VX, VY float64
}

// NewBullet creates a bullet centered on x rising from y.
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		Rect: geom.NewRect(x-BulletWidth/2, y-BulletHeight, BulletWidth, BulletHeight),
		VY:   -BulletSpeed,
	}
}

// NewAngledBullet creates a bullet leaning angleDeg degrees off vertical,
// used by the triple-shot effect.
func NewAngledBullet(x, y, angleDeg float64) *Bullet {
	vx, vy := SpreadVelocity(BulletSpeed, angleDeg)
	b := NewBullet(x, y)
	b.VX = vx
	b.VY = -vy
	return b
}

// Advance applies the bullet's velocity.
func (b *Bullet) Advance() {
	b.X += b.VX
	b.Y += b.VY
}

// CrossedTop reports whether the bullet has fully left through the top edge.
func (b *Bullet) CrossedTop() bool {
	return b.Y+b.H < 0
}

// EnemyBullet is a shot fired by a UFO or the boss toward the player.
type EnemyBullet struct {
	geom.Rect
	VX, VY float64
}

// NewEnemyBullet creates an enemy bullet at (x, y) with the given velocity.
func NewEnemyBullet(x, y, vx, vy float64) *EnemyBullet {
	return &EnemyBullet{
		Rect: geom.NewRect(x-EnemyBulletSize/2, y, EnemyBulletSize, EnemyBulletSize),
		VX:   vx,
		VY:   vy,
	}
}

// Advance applies the bullet's velocity.
func (b *EnemyBullet) Advance() {
	b.X += b.VX
	b.Y += b.VY
}
