// Package engine holds the process-wide immutable engine constants: player
// physics, default player state, booster impulses, and the catalogue of
// texture sheet dimensions.
//
// The values reproduce the freeware Cave Story executable's hardcoded tables.
// Entries marked nxengine or cse2 cover assets introduced by those ports.
package engine

import "github.com/doukutsu-go/doukutsu/common"

// PhysicsConsts are the player movement parameters for one medium.
// All values are fixed-point 1/512-subpixel units per tick (or per tick
// squared for the acceleration terms).
type PhysicsConsts struct {
	MaxDash       int32
	MaxMove       int32
	GravityGround int32
	GravityAir    int32
	DashGround    int32
	DashAir       int32
	Resist        int32
	Jump          int32
}

// BoosterConsts are the directional impulses applied by the Booster 2.0.
type BoosterConsts struct {
	B20Up      int32
	B20UpNoKey int32
	B20Down    int32
	B20Left    int32
	B20Right   int32
}

// MyCharConsts is the initial state of the player character.
// View and Hit are in fixed-point subpixel units; the animation frame
// rectangles index into the MyChar sprite sheet in whole pixels.
type MyCharConsts struct {
	Cond            uint16
	Flags           uint32
	Equip           uint16
	Direction       common.Direction
	View            common.Rect[int32]
	Hit             common.Rect[int32]
	Life            uint16
	MaxLife         uint16
	Unit            uint8
	AirPhysics      PhysicsConsts
	WaterPhysics    PhysicsConsts
	AnimationsLeft  [12]common.Rect[uint16]
	AnimationsRight [12]common.Rect[uint16]
}

// TextureSize is the pixel dimensions of a texture sheet.
type TextureSize struct {
	Width, Height int
}

// EngineConstants aggregates every constant table. Obtain one from
// [Defaults]; treat it as immutable afterwards.
type EngineConstants struct {
	MyChar   MyCharConsts
	Booster  BoosterConsts
	TexSizes map[string]TextureSize
}

// Clone returns a deep copy. Everything but TexSizes is a value type.
func (c *EngineConstants) Clone() EngineConstants {
	out := *c
	out.TexSizes = make(map[string]TextureSize, len(c.TexSizes))
	for k, v := range c.TexSizes {
		out.TexSizes[k] = v
	}
	return out
}

// TextureSizeFor looks up the declared dimensions of a texture sheet by its
// asset name. The second return is false for unknown names.
func (c *EngineConstants) TextureSizeFor(name string) (TextureSize, bool) {
	s, ok := c.TexSizes[name]
	return s, ok
}

// ValidateTextureSize checks a loaded image against the declared dimensions.
// Unknown names pass: the table only constrains the sheets it catalogues.
func (c *EngineConstants) ValidateTextureSize(name string, width, height int) bool {
	s, ok := c.TexSizes[name]
	if !ok {
		return true
	}
	return s.Width == width && s.Height == height
}

// Defaults returns the constants of the freeware v1.0.0.6 executable.
func Defaults() EngineConstants {
	return EngineConstants{
		MyChar: MyCharConsts{
			Cond:      0x80,
			Flags:     0,
			Equip:     0,
			Direction: common.DirectionRight,
			View:      common.Rect[int32]{Left: 8 * 0x200, Top: 8 * 0x200, Right: 8 * 0x200, Bottom: 8 * 0x200},
			Hit:       common.Rect[int32]{Left: 5 * 0x200, Top: 8 * 0x200, Right: 5 * 0x200, Bottom: 8 * 0x200},
			Life:      3,
			MaxLife:   3,
			Unit:      0,
			AirPhysics: PhysicsConsts{
				MaxDash:       0x32c,
				MaxMove:       0x5ff,
				GravityAir:    0x20,
				GravityGround: 0x50,
				DashAir:       0x20,
				DashGround:    0x55,
				Resist:        0x33,
				Jump:          0x500,
			},
			WaterPhysics: PhysicsConsts{
				MaxDash:       0x196,
				MaxMove:       0x2ff,
				GravityAir:    0x10,
				GravityGround: 0x28,
				DashAir:       0x10,
				DashGround:    0x2a,
				Resist:        0x19,
				Jump:          0x280,
			},
			AnimationsLeft: [12]common.Rect[uint16]{
				{Left: 0, Top: 0, Right: 16, Bottom: 16},
				{Left: 16, Top: 0, Right: 32, Bottom: 16},
				{Left: 0, Top: 0, Right: 16, Bottom: 16},
				{Left: 32, Top: 0, Right: 48, Bottom: 16},
				{Left: 0, Top: 0, Right: 16, Bottom: 16},
				{Left: 48, Top: 0, Right: 64, Bottom: 16},
				{Left: 64, Top: 0, Right: 80, Bottom: 16},
				{Left: 48, Top: 0, Right: 64, Bottom: 16},
				{Left: 80, Top: 0, Right: 96, Bottom: 16},
				{Left: 48, Top: 0, Right: 64, Bottom: 16},
				{Left: 96, Top: 0, Right: 112, Bottom: 16},
				{Left: 112, Top: 0, Right: 128, Bottom: 16},
			},
			AnimationsRight: [12]common.Rect[uint16]{
				{Left: 0, Top: 16, Right: 16, Bottom: 32},
				{Left: 16, Top: 16, Right: 32, Bottom: 32},
				{Left: 0, Top: 16, Right: 16, Bottom: 32},
				{Left: 32, Top: 16, Right: 48, Bottom: 32},
				{Left: 0, Top: 16, Right: 16, Bottom: 32},
				{Left: 48, Top: 16, Right: 64, Bottom: 32},
				{Left: 64, Top: 16, Right: 80, Bottom: 32},
				{Left: 48, Top: 16, Right: 64, Bottom: 32},
				{Left: 80, Top: 16, Right: 96, Bottom: 32},
				{Left: 48, Top: 16, Right: 64, Bottom: 32},
				{Left: 96, Top: 16, Right: 112, Bottom: 32},
				{Left: 112, Top: 16, Right: 128, Bottom: 32},
			},
		},
		Booster: BoosterConsts{
			B20Up:      -0x5ff,
			B20UpNoKey: -0x5ff,
			B20Down:    0x5ff,
			B20Left:    -0x5ff,
			B20Right:   0x5ff,
		},
		TexSizes: map[string]TextureSize{
			"ArmsImage":                     {256, 16},
			"Arms":                          {320, 200},
			"bk0":                           {64, 64},
			"bkBlack":                       {64, 64},
			"bkBlue":                        {64, 64},
			"bkFall":                        {64, 64},
			"bkFog":                         {320, 240},
			"bkFog480fix":                   {480, 272}, // nxengine
			"bkGard":                        {48, 64},
			"bkGray":                        {64, 64},
			"bkGreen":                       {64, 64},
			"bkHellish":                     {320, 240}, // nxengine
			"bkHellish480fix":               {480, 272}, // nxengine
			"bkLight":                       {320, 240}, // nxengine
			"bkLight480fix":                 {480, 272}, // nxengine
			"bkMaze":                        {64, 64},
			"bkMoon":                        {320, 240},
			"bkMoon480fix":                  {480, 272}, // nxengine
			"bkRed":                         {32, 32},
			"bkSunset":                      {320, 240}, // nxengine
			"bkSunset480fix":                {480, 272}, // nxengine
			"bkWater":                       {32, 48},
			"Bullet":                        {320, 176},
			"Caret":                         {320, 240},
			"casts":                         {320, 240},
			"Face":                          {288, 240},
			"Face_0":                        {288, 240}, // nxengine
			"Face_1":                        {288, 240}, // nxengine
			"Face_2":                        {288, 240}, // nxengine
			"Fade":                          {256, 32},
			"ItemImage":                     {256, 128},
			"Loading":                       {64, 8},
			"MyChar":                        {200, 64},
			"Npc/Npc0":                      {32, 32},
			"Npc/NpcAlmo1":                  {320, 240},
			"Npc/NpcAlmo2":                  {320, 240},
			"Npc/NpcBallos":                 {320, 240},
			"Npc/NpcBllg":                   {320, 96},
			"Npc/NpcCemet":                  {320, 112},
			"Npc/NpcCent":                   {320, 192},
			"Npc/NpcCurly":                  {256, 80},
			"Npc/NpcDark":                   {160, 64},
			"Npc/NpcDr":                     {320, 240},
			"Npc/NpcEggs1":                  {320, 112},
			"Npc/NpcEggs2":                  {320, 128},
			"Npc/NpcFrog":                   {320, 240},
			"Npc/NpcGuest":                  {320, 184},
			"Npc/NpcHell":                   {320, 160},
			"Npc/NpcHeri":                   {320, 128},
			"Npc/NpcIronH":                  {320, 72},
			"Npc/NpcIsland":                 {320, 80},
			"Npc/NpcKings":                  {96, 48},
			"Npc/NpcMaze":                   {320, 192},
			"Npc/NpcMiza":                   {320, 240},
			"Npc/NpcMoon":                   {320, 128},
			"Npc/NpcOmg":                    {320, 120},
			"Npc/NpcPlant":                  {320, 48},
			"Npc/NpcPress":                  {320, 240},
			"Npc/NpcPriest":                 {320, 240},
			"Npc/NpcRavil":                  {320, 168},
			"Npc/NpcRed":                    {320, 144},
			"Npc/NpcRegu":                   {320, 240},
			"Npc/NpcSand":                   {320, 176},
			"Npc/NpcStream":                 {64, 32},
			"Npc/NpcSym":                    {320, 240},
			"Npc/NpcToro":                   {320, 144},
			"Npc/NpcTwinD":                  {320, 144},
			"Npc/NpcWeed":                   {320, 240},
			"Npc/NpcX":                      {320, 240},
			"Resource/BITMAP/Credit01":      {160, 240}, // cse2
			"Resource/BITMAP/Credit02":      {160, 240}, // cse2
			"Resource/BITMAP/Credit03":      {160, 240}, // cse2
			"Resource/BITMAP/Credit04":      {160, 240}, // cse2
			"Resource/BITMAP/Credit05":      {160, 240}, // cse2
			"Resource/BITMAP/Credit06":      {160, 240}, // cse2
			"Resource/BITMAP/Credit07":      {160, 240}, // cse2
			"Resource/BITMAP/Credit08":      {160, 240}, // cse2
			"Resource/BITMAP/Credit09":      {160, 240}, // cse2
			"Resource/BITMAP/Credit10":      {160, 240}, // cse2
			"Resource/BITMAP/Credit11":      {160, 240}, // cse2
			"Resource/BITMAP/Credit12":      {160, 240}, // cse2
			"Resource/BITMAP/Credit14":      {160, 240}, // cse2
			"Resource/BITMAP/Credit15":      {160, 240}, // cse2
			"Resource/BITMAP/Credit16":      {160, 240}, // cse2
			"Resource/BITMAP/Credit17":      {160, 240}, // cse2
			"Resource/BITMAP/Credit18":      {160, 240}, // cse2
			"Resource/BITMAP/pixel":         {160, 16},  // cse2
			"Resource/CURSOR/CURSOR_IKA":    {32, 32},   // cse2
			"Resource/CURSOR/CURSOR_NORMAL": {32, 32},   // cse2
			"StageImage":                    {256, 16},
			"Stage/Prt0":                    {32, 32},
			"Stage/PrtAlmond":               {256, 96},
			"Stage/PrtBarr":                 {256, 88},
			"Stage/PrtCave":                 {256, 80},
			"Stage/PrtCent":                 {256, 128},
			"Stage/PrtEggIn":                {256, 80},
			"Stage/PrtEggs":                 {256, 240},
			"Stage/PrtEggX":                 {256, 240},
			"Stage/PrtFall":                 {256, 128},
			"Stage/PrtGard":                 {256, 97},
			"Stage/PrtHell":                 {256, 240},
			"Stage/PrtJail":                 {256, 128},
			"Stage/PrtLabo":                 {128, 64},
			"Stage/PrtMaze":                 {256, 160},
			"Stage/PrtMimi":                 {256, 160},
			"Stage/PrtOside":                {256, 64},
			"Stage/PrtPens":                 {256, 64},
			"Stage/PrtRiver":                {256, 96},
			"Stage/PrtSand":                 {256, 112},
			"Stage/PrtStore":                {256, 112},
			"Stage/PrtWeed":                 {256, 128},
			"Stage/PrtWhite":                {256, 240},
			"TextBox":                       {244, 144},
			"Title":                         {320, 48},
		},
	}
}
