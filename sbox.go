package jipg

// Sbox is the 256-entry perfect-prefix table the S-box dispatch hash
// folds object keys through. cmd/jipggen embeds this exact table,
// value for value, into every generated parser's dispatch switch, so
// a key's dispatch case here and in generated code always agree.
//
// The table is a fixed, arbitrary permutation: any table where SboxHash
// distinguishes the keys of a given schema works, so it was generated
// once offline with a splitmix64 stream and frozen here rather than
// computed at either generator or parser runtime.
var Sbox = [256]uint64{
	0xAB243A118972B517, 0xED8459ED05099509, 0x028473F1E8B6F360, 0x8E8D2215EE61D318,
	0x74D4F6CF0CECE82C, 0xDAE4B63BEE6D1510, 0x37517304923655F5, 0x347FF3112C218DA5,
	0x62C457B4275E154F, 0x7051230BFD6EC13A, 0x0A49FCD75226BD0C, 0xC1D2789E28231439,
	0x67E75A0148EA3D27, 0xA678772BDE53ED10, 0x9DD5C88F3111394B, 0x517F66E0ACFAB6AA,
	0x57FB3F75EDFB7B3F, 0x8C535AB7EBCF218B, 0x8E947C6EBDFDADCB, 0x9C5012E6A77DF36E,
	0xBDB889C063F1DD6B, 0x3AF94CEED7DF7465, 0x94222D0817CA96EF, 0x0C061D9DAD904A5B,
	0x0C286C73F7F817B4, 0xF83BCDAFA88ACB3F, 0x85C0216AA017EDE5, 0x5A76F9B0167A5C34,
	0x0A36F66E17549944, 0x5872E1DC36560564, 0x78503C5E370F7C1D, 0x4CAF92623A8458E5,
	0x887C84124CEE72DC, 0x2B2ED60942E6A9D6, 0xE0A2B78364C1E1CC, 0x91E43FA5237B1211,
	0x95043E2EA97410AA, 0xEAF0B2A5C50F1019, 0x2C5E3775FA67D4E8, 0xD5312227B56D0A8C,
	0x0165BED762A1C238, 0xBFBD172E89F8A222, 0x1B1622D26A8FFB0A, 0x51164B64A40006FC,
	0x23C2770697A529E8, 0xE87797E7C1BCB616, 0xC0D7FEF6B2948953, 0xC5F7323C08095514,
	0xF061CBFBA45C48AD, 0x394DE7A15C07DEF5, 0xA93F5339F67C7FF1, 0x767DE60DA313CA2D,
	0x75597CE7E5CB6831, 0xAA82F775B344FB79, 0xA6D58360A9FB158A, 0x9B1A6C56CFF75DA6,
	0xF1EBBB7A9FA43EC2, 0x66D664195F6FDFDB, 0x17AED170C0214506, 0x377440B8F44BC995,
	0x582BD41508932EE2, 0x15E7F31255452C20, 0x2CA0F086503E2201, 0x6DAF11AAAD4598E3,
	0xFECC6A720E39B524, 0x1C4590D79968B063, 0x6AE90CF75F7FAE22, 0xC4E87938C2463FAC,
	0x21E7CC6AB614D283, 0x7211C2CB833C2569, 0x2E4A92B20D696266, 0x7D5A7DCEA07E4935,
	0x42F40819D3E703E8, 0x17CFDEC28C115B47, 0x291C507AE202A756, 0xB6667701361250F8,
	0x7A972EF661537085, 0xEE04A09CADCD04A5, 0x2AFFF406C0787B88, 0xE6429FE77A104FF9,
	0xA2C471ECFA4D6DB3, 0xA7F465B63E7DB4A5, 0x642B66D5D9119D37, 0xF041ACE78F6F1169,
	0xBC48B89A4F1CCC15, 0x253E858BAA79E8ED, 0x7ED8AF89343CB624, 0x550017A356145696,
	0xFE0A674F8CF94C54, 0xD7885BBB61BC6190, 0x7303F363E0A62E2C, 0x87F71D41A9B5751E,
	0x58DBD4A79C8D6C55, 0x9BFB7BBAB02F4E6B, 0xEE0DD2ED9FA954C6, 0xEDDA669C6D529DB5,
	0x994A91B6BBAD430F, 0x91FDE444E0220D38, 0x787F424C668A4552, 0x6A58E1AC510532A7,
	0x12613CB1338E9C87, 0x72D607D2AED87D84, 0xC686C0C5CC808B2C, 0x5020A95E361C9FDB,
	0x87EB9D2C280B6395, 0x3B417A592F399798, 0x4AC58221D3B061AB, 0x94276E2BFF5D5001,
	0x8D46010682B175F0, 0x1773712C1C3E0158, 0x561C36F18DAF4BB2, 0x434B0E1BF4DE4EC3,
	0x349B9485C074539A, 0x4177C6373BE4DFBF, 0x39C6D0665C269D8A, 0x1BA33355C1F378A6,
	0x856BB79AC826A1BD, 0x83EC6E16D048E4A2, 0xD631CA45E579A78D, 0x8823872EC49E3C50,
	0xEAD72CD942C7340E, 0xFEF4633163C3D4F3, 0xD63E6B6D8FDC1A7B, 0x5FFAF8FDADF5467D,
	0x676D22E675F81894, 0x145104189FF47199, 0x5A8B7C926AFB9A24, 0x5545818FA870DA61,
	0xBCD5A6C5EDE7D72F, 0x78704DFAE683E7BD, 0x8D3CAC040744F556, 0xCE8A332C00437CDA,
	0x70DF1F6A56C9E550, 0x82758EB3E8E7D150, 0xA44334D076331532, 0x15D5B5AE9C834135,
	0xA9825D8BA47EB3A4, 0x947A5435FD4DE721, 0xD9A064735BB3B62B, 0x2D9247186B18E667,
	0x88A253D41DAC5118, 0x0CC624B165DAC7ED, 0xF94751855185F831, 0xB71D631C2B464615,
	0x46FBCC9232E3671C, 0xFBD8D5782A853776, 0x06F34F989BBDE3E6, 0xC270E822DDE329D9,
	0xE88626F4EB45F4B2, 0x5E24BD7E457EB17E, 0xBE07E377C95EB69B, 0x82F18E966034BBCA,
	0x280A81D327976478, 0x5B5A998193FE2124, 0x848AC126DE4D480D, 0x33F0FD6767545ADF,
	0xB2124845F86A707C, 0xFD4C3B6C39D1BF60, 0xB5E36FF05DC2EFA7, 0x6036FB2A7960C1AF,
	0xC757016FF36E1647, 0x61D5412471593AA7, 0xB40304C016EC3C91, 0xF1EC602AF5DC68C3,
	0x9AFE4E99F5A931AA, 0x9DFB7810F363D159, 0x0C98415016857996, 0x62E0420D8A28572C,
	0xA34C514150A1EBCD, 0x2031F1089A0D59D5, 0xEB2A8D20D4476F87, 0x37E8320B5D2804DD,
	0xED319F0885CC538D, 0x1FA15C8C1FAEF445, 0xD738210AB5758369, 0x4AD41C00B00783D5,
	0xF2CA1176D46BF487, 0x0E120062EBEC064B, 0x89BFB74E73987B37, 0xB9427346A11AAFBF,
	0xC37E3C366A8677D7, 0x4220DA21B4A27F3B, 0x431BCDB960F76A99, 0xD6BFE01FFC8AB105,
	0xEFD7B0F2A7A9E517, 0xF3B5B5B7B42E5502, 0x3489A4658627A562, 0x7065BB84404E8731,
	0xE429ABA88EC6E519, 0x0E78DDF36FBA725D, 0xC135EE18E34A7B9A, 0x913144FF546C3EA1,
	0x4446BF00E32A828F, 0xA1C9FA1A5267C5AB, 0xB235811B717107DB, 0xD13AB07E17DA0EC6,
	0xFAB39B699F5098B6, 0x2731F1D5FE4E1167, 0xB6DC8FDA800BFBA8, 0x6FB0559670E68507,
	0x3A2D9F1711D5C089, 0x2555C1FA5C5A8204, 0x4ABE40175894CE3D, 0xFC57DBBD6D60546F,
	0xABF27C13F991469D, 0x3C873B0BBF5D7196, 0xD8D71F2BD1F995E6, 0x9778EF0FB1B16960,
	0xB9A866A96BE4630C, 0x451A7F18DAD414BF, 0xDF687AF41E471C0C, 0xEB1B2FA8F7E110FE,
	0x5BF7FCFA1F855B63, 0xC04F511063664723, 0x7C51EFFAAC323BD3, 0xB7400E2C3E464397,
	0x9E3D837857709415, 0x5266EFD1A7E11B40, 0x584BD9C37FBAEB28, 0x11E42EB50104442A,
	0xD13E7EC7E00B948D, 0x12501771D5148DE7, 0x8C87CB113979EEDB, 0x40A52449DA16F608,
	0x70B9C9274D05B8E6, 0x672E67361A938B9F, 0x07052DF50DA84873, 0x27D94668F780A9D5,
	0x5700EF1088E6E10B, 0xE5FC665469865C3C, 0xA365C7867596EE64, 0x9DCE8AA338A791EE,
	0x7C1D2E124C993107, 0x6D416A3CBD6EC642, 0xCEB5FB676EB157BD, 0x345E69E5C561CDC9,
	0x35806B2B4A217111, 0xF095227E664752C8, 0xA3F85BCBD24B58CC, 0x1D8E5B09EC621F46,
	0x07D7DBEA1BF4A7CC, 0x1D642351A9842901, 0x4D41F010052E0CB7, 0xACFA76601F63224C,
	0xB729589F24730902, 0xDDB68FD91508C9ED, 0x1103EF3FBADBE47E, 0x5B982C410B27C7AC,
	0x1B126727D650BA29, 0x51FF3FE914A18236, 0xFA6DDBDF9FA5BEE5, 0x03BAE0B88A3F5751,
	0xD99FD5544B11035F, 0x92B721DA315F144A, 0x3BB4FAECBF77D75D, 0x0B668240D9821262,
}

// SboxHash folds key through the Sbox table: h = (h + Sbox[b]) * 3 for
// each byte b, in wraparound uint64 arithmetic. Both the generator (to
// compute each key's dispatch case value and detect same-object key
// collisions) and
// every emitted parser (to dispatch an incoming object key) compute
// this exact function.
func SboxHash(key []byte) uint64 {
	var h uint64
	for _, b := range key {
		h = (h + Sbox[b]) * 3
	}
	return h
}
